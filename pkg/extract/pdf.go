package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// scannedThreshold: below this many runes the PDF likely has no text layer
// and each page goes through OCR instead.
const scannedThreshold = 50

// PDF extracts text with pdftotext, falling back to page-image OCR
// (pdftoppm + tesseract) for scanned documents.
type PDF struct {
	runner Runner
}

func NewPDF(runner Runner) *PDF { return &PDF{runner: runner} }

func (p *PDF) Extensions() []string { return []string{".pdf"} }

func (p *PDF) Extract(ctx context.Context, path string) (string, error) {
	out, err := p.runner.Run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "[Error: OCR tools missing. Cannot read scanned PDF.]", nil
		}
		return fmt.Sprintf("[Error reading PDF: %v]", err), nil
	}

	text := strings.TrimSpace(string(out))
	if len([]rune(text)) >= scannedThreshold {
		return text, nil
	}
	// probably a scanned PDF
	return p.ocrPages(ctx, path)
}

func (p *PDF) ocrPages(ctx context.Context, path string) (string, error) {
	tmp, err := os.MkdirTemp("", "shoopaholic-ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmp)

	prefix := filepath.Join(tmp, "page")
	if _, err := p.runner.Run(ctx, "pdftoppm", "-png", path, prefix); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "[Error: OCR tools missing. Cannot read scanned PDF.]", nil
		}
		return fmt.Sprintf("[Error reading PDF: %v]", err), nil
	}

	pages, _ := filepath.Glob(prefix + "*.png")
	sort.Strings(pages)

	var b strings.Builder
	for _, img := range pages {
		out, err := p.runner.Run(ctx, "tesseract", img, "stdout")
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return "[Error: OCR tools missing. Cannot read scanned PDF.]", nil
			}
			continue
		}
		b.Write(out)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
