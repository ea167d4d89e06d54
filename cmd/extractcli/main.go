package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/ocr"
)

// extractcli acquires text from a single boleto document and runs the
// rules engine over it, printing the extracted fields as JSON. Handy
// for tuning patterns against a problem document.
func main() {
	var (
		textOnly = flag.Bool("text", false, "print acquired text instead of fields")
		noSubst  = flag.Bool("no-ocr-subst", false, "disable OCR digit-confusion substitution")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extractcli [flags] <file.pdf|png|jpg>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ocrCfg := common.LoadConfig().OCR
	ex := ocr.NewExtractor(ocr.Config{
		Pdftotext:     ocrCfg.Pdftotext,
		Pdftoppm:      ocrCfg.Pdftoppm,
		Tesseract:     ocrCfg.Tesseract,
		TesseractLang: ocrCfg.TesseractLang,
		TessdataDir:   ocrCfg.TessdataDir,
		DPI:           ocrCfg.DPI,
		MaxPages:      ocrCfg.MaxPages,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := ex.Extract(ctx, path)
	if err != nil {
		logger.Error("text acquisition failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text acquired",
		"method", res.Method, "pages", res.Pages,
		"confidence", res.Confidence, "duration", res.Duration,
	)
	for _, w := range res.Warnings {
		logger.Warn(w)
	}

	if *textOnly {
		fmt.Println(res.Text)
		return
	}

	engine := fields.NewExtractor(fields.Options{OCRSubstitution: !*noSubst})
	x := engine.Extract(res.Text, filepath.Base(path))

	out, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		logger.Error("marshal fields", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
