package extract

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extractor pulls best-effort text out of one family of file formats.
// Implementations return marker strings like "[Error: ...]" instead of
// failing hard when an external tool is missing or misbehaves.
type Extractor interface {
	Extensions() []string
	Extract(ctx context.Context, path string) (string, error)
}

// Runner executes an external command and returns its stdout. It exists as a
// seam so tests can run without pdftotext or tesseract installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner { return execRunner{} }

// Registry maps file extensions to extractors.
type Registry struct {
	byExt map[string]Extractor
}

func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{byExt: map[string]Extractor{}}
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			r.byExt[ext] = ex
		}
	}
	return r
}

// ByFilename returns the extractor for the file's extension, or nil when the
// format is unsupported.
func (r *Registry) ByFilename(filename string) Extractor {
	return r.byExt[strings.ToLower(filepath.Ext(filename))]
}
