package extract

import (
	"context"
	"os"
)

// Plaintext reads text files as-is.
type Plaintext struct{}

func NewPlaintext() *Plaintext { return &Plaintext{} }

func (p *Plaintext) Extensions() []string { return []string{".txt", ".md"} }

func (p *Plaintext) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
