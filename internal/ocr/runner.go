package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner abstracts the external acquisition tools so tests can stub
// pdftotext/pdftoppm/tesseract without spawning processes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// A crashing tool can dump a whole rasterized page to stderr; keep log
// records bounded.
const maxStderrLog = 4 << 10

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		slog.Error("ocr.exec.failed",
			"tool", name,
			"args", args,
			"duration", time.Since(start),
			"error", err,
			"stderr", clip(errb.String(), maxStderrLog),
		)
		return out.Bytes(), errb.Bytes(), err
	}

	slog.Debug("ocr.exec.ok",
		"tool", name,
		"args", args,
		"duration", time.Since(start),
		"stdout_bytes", out.Len(),
	)
	return out.Bytes(), errb.Bytes(), nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + " [clipped]"
}
