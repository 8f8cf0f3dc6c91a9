package worker

import "sync"

// Reporter bridges a long-running encrypt/decrypt/transfer operation
// with whatever front end is driving it (CLI progress line, future
// UI), the same shape the volume layer's UI bridge used: plain
// callback fields guarded by a mutex around the cancellation flag.
type Reporter struct {
	mu sync.RWMutex

	OnStatus    func(text string)
	OnProgress  func(fraction float32, info string)
	OnCanCancel func(can bool)
	CheckCancel func() bool

	cancelled bool
}

// NewReporter returns a Reporter with the given callbacks. Any
// callback may be nil.
func NewReporter(
	onStatus func(string),
	onProgress func(float32, string),
	onCanCancel func(bool),
	checkCancel func() bool,
) *Reporter {
	return &Reporter{
		OnStatus:    onStatus,
		OnProgress:  onProgress,
		OnCanCancel: onCanCancel,
		CheckCancel: checkCancel,
	}
}

// SetStatus reports a human-readable status line.
func (r *Reporter) SetStatus(text string) {
	if r.OnStatus != nil {
		r.OnStatus(text)
	}
}

// SetProgress reports fractional progress (0..1) and a short info
// string (e.g. "part 2/5").
func (r *Reporter) SetProgress(fraction float32, info string) {
	if r.OnProgress != nil {
		r.OnProgress(fraction, info)
	}
}

// SetCanCancel toggles whether the front end should currently offer a
// cancel affordance.
func (r *Reporter) SetCanCancel(can bool) {
	if r.OnCanCancel != nil {
		r.OnCanCancel(can)
	}
}

// IsCancelled reports whether Cancel has been called, or the
// CheckCancel callback currently returns true.
func (r *Reporter) IsCancelled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cancelled {
		return true
	}
	if r.CheckCancel != nil {
		return r.CheckCancel()
	}
	return false
}

// Cancel marks the operation as cancelled.
func (r *Reporter) Cancel() {
	r.mu.Lock()
	r.cancelled = true
	r.mu.Unlock()
}

// Reset clears a prior cancellation, readying the Reporter for reuse.
func (r *Reporter) Reset() {
	r.mu.Lock()
	r.cancelled = false
	r.mu.Unlock()
}
