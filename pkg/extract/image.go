package extract

import (
	"context"
	"fmt"
	"strings"
)

// Image runs tesseract OCR over a picture of shop material.
type Image struct {
	runner Runner
}

func NewImage(runner Runner) *Image { return &Image{runner: runner} }

func (i *Image) Extensions() []string { return []string{".png", ".jpg", ".jpeg"} }

func (i *Image) Extract(ctx context.Context, path string) (string, error) {
	out, err := i.runner.Run(ctx, "tesseract", path, "stdout")
	if err != nil {
		return fmt.Sprintf("[OCR Error: %v]", err), nil
	}
	return strings.TrimSpace(string(out)), nil
}
