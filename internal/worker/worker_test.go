package worker

import "testing"

type fakeWatchdog struct {
	paused, resumed int
}

func (f *fakeWatchdog) Pause()  { f.paused++ }
func (f *fakeWatchdog) Resume() { f.resumed++ }

func TestRunPausesAndResumesAroundSuccess(t *testing.T) {
	wd := &fakeWatchdog{}
	got, err := Run(wd, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d", got)
	}
	if wd.paused != 1 || wd.resumed != 1 {
		t.Fatalf("expected exactly one pause/resume pair, got %d/%d", wd.paused, wd.resumed)
	}
}

func TestRunResumesEvenOnError(t *testing.T) {
	wd := &fakeWatchdog{}
	sentinel := errTest("boom")
	_, err := Run(wd, func() (int, error) { return 0, sentinel })
	if err != sentinel {
		t.Fatalf("got %v", err)
	}
	if wd.resumed != 1 {
		t.Fatalf("expected watchdog resumed on error, got %d", wd.resumed)
	}
}

func TestRunWithNilWatchdogUsesNoop(t *testing.T) {
	got, err := Run[string](nil, func() (string, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Fatalf("got %q, %v", got, err)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestReporterCancelAndReset(t *testing.T) {
	r := NewReporter(nil, nil, nil, nil)
	if r.IsCancelled() {
		t.Fatal("expected fresh reporter to not be cancelled")
	}
	r.Cancel()
	if !r.IsCancelled() {
		t.Fatal("expected reporter to be cancelled")
	}
	r.Reset()
	if r.IsCancelled() {
		t.Fatal("expected reset reporter to not be cancelled")
	}
}

func TestReporterCallbacksInvoked(t *testing.T) {
	var status string
	var fraction float32
	var canCancel bool
	r := NewReporter(
		func(s string) { status = s },
		func(f float32, info string) { fraction = f; _ = info },
		func(c bool) { canCancel = c },
		nil,
	)
	r.SetStatus("working")
	r.SetProgress(0.5, "part 1/2")
	r.SetCanCancel(true)

	if status != "working" || fraction != 0.5 || !canCancel {
		t.Fatalf("callbacks did not fire as expected: %q %v %v", status, fraction, canCancel)
	}
}

func TestReporterCheckCancelCallback(t *testing.T) {
	called := false
	r := NewReporter(nil, nil, nil, func() bool { called = true; return true })
	if !r.IsCancelled() {
		t.Fatal("expected IsCancelled to defer to CheckCancel")
	}
	if !called {
		t.Fatal("expected CheckCancel to be invoked")
	}
}
