package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/krux-signer/core/internal/bbqr"
	"github.com/krux-signer/core/internal/detector"
	"github.com/krux-signer/core/internal/log"
	"github.com/krux-signer/core/internal/util"
)

var (
	qrFileType string
	qrCapacity int
	qrIn       string
	qrOut      string
)

func init() {
	qrEncodeCmd.Flags().StringVar(&qrFileType, "type", "psbt", "file type: psbt, transaction, json, text")
	qrEncodeCmd.Flags().IntVar(&qrCapacity, "cap", 152, "max payload bytes per QR part")
	qrEncodeCmd.Flags().StringVarP(&qrIn, "in", "i", "", "input file (default stdin)")
	qrEncodeCmd.Flags().StringVarP(&qrOut, "out", "o", "", "output file, one part per line (default stdout)")

	qrDecodeCmd.Flags().StringVarP(&qrIn, "in", "i", "", "input file, one part per line (default stdin)")
	qrDecodeCmd.Flags().StringVarP(&qrOut, "out", "o", "", "output file (default stdout)")

	qrDetectCmd.Flags().StringVarP(&qrIn, "in", "i", "", "input file (default stdin)")

	qrCmd.AddCommand(qrEncodeCmd, qrDecodeCmd, qrDetectCmd)
	rootCmd.AddCommand(qrCmd)
}

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Encode, decode, and classify BBQr multi-part QR payloads",
}

var qrEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Split a file into BBQr QR parts",
	RunE:  runQrEncode,
}

var qrDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Reassemble BBQr QR parts into the original file",
	RunE:  runQrDecode,
}

var qrDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Classify a mnemonic-carrying QR payload",
	RunE:  runQrDetect,
}

func parseFileType(s string) (bbqr.FileType, error) {
	switch s {
	case "psbt":
		return bbqr.FileTypePSBT, nil
	case "transaction":
		return bbqr.FileTypeTransaction, nil
	case "json":
		return bbqr.FileTypeJSON, nil
	case "text":
		return bbqr.FileTypeUnicodeText, nil
	default:
		return 0, fmt.Errorf("unknown file type %q (want psbt, transaction, json, or text)", s)
	}
}

func runQrEncode(cmd *cobra.Command, args []string) error {
	ft, err := parseFileType(qrFileType)
	if err != nil {
		return err
	}
	data, err := readInput(qrIn)
	if err != nil {
		return err
	}
	parts, err := bbqr.Encode(ft, data, qrCapacity)
	if err != nil {
		log.Error("qr encode failed", log.Err(err), log.Int("bytes", len(data)))
		return err
	}
	log.Debug("qr encode", log.Int("parts", len(parts)), log.Int("bytes", len(data)))

	var w *os.File
	if qrOut == "" {
		w = os.Stdout
	} else {
		w, err = os.Create(qrOut)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	start := time.Now()
	totalRendered := 0
	renderedLen := 0
	for _, p := range parts {
		renderedLen += len(p.Payload)
	}
	for _, p := range parts {
		rendered := bbqr.RenderPart(p)
		fmt.Fprintln(w, string(rendered))
		totalRendered += len(p.Payload)
		progress, _, eta := util.Statify(int64(totalRendered), int64(renderedLen), start)
		fmt.Fprintf(os.Stderr, "\rpart %d/%d %3.0f%% eta %s", p.Index+1, p.Total, progress*100, eta)
	}
	fmt.Fprintf(os.Stderr, "\n%d part(s), %s total\n", len(parts), util.Sizeify(int64(len(data))))
	return nil
}

func runQrDecode(cmd *cobra.Command, args []string) error {
	var r *os.File
	var err error
	if qrIn == "" {
		r = os.Stdin
	} else {
		r, err = os.Open(qrIn)
		if err != nil {
			return err
		}
		defer r.Close()
	}

	asm := bbqr.NewAssembler()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		part, err := bbqr.ParsePart(line)
		if err != nil {
			return fmt.Errorf("parsing part: %w", err)
		}
		if err := asm.Add(part); err != nil {
			return fmt.Errorf("adding part: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	have, total := asm.Progress()
	if !asm.Complete() {
		return fmt.Errorf("incomplete: have %d of %d parts", have, total)
	}

	payload, err := asm.Assemble()
	if err != nil {
		return err
	}
	return writeOutput(qrOut, payload)
}

func runQrDetect(cmd *cobra.Command, args []string) error {
	data, err := readInput(qrIn)
	if err != nil {
		return err
	}
	format := detector.DetectFormat(data)
	fmt.Println(format)
	return nil
}
