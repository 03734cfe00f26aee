package extract

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// mockRunner is a test double for Runner keyed by command name.
type mockRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (m *mockRunner) Run(_ context.Context, name string, _ ...string) ([]byte, error) {
	m.calls = append(m.calls, name)
	if err, ok := m.errs[name]; ok {
		return nil, err
	}
	return m.outputs[name], nil
}

func notFound(name string) error {
	return &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry_DispatchByExtension(t *testing.T) {
	reg := NewRegistry(NewPlaintext(), NewHTML())

	assert.IsType(t, &Plaintext{}, reg.ByFilename("catalog.txt"))
	assert.IsType(t, &Plaintext{}, reg.ByFilename("README.MD"))
	assert.IsType(t, &HTML{}, reg.ByFilename("page.html"))
	assert.Nil(t, reg.ByFilename("archive.zip"))
	assert.Nil(t, reg.ByFilename("noextension"))
}

func TestPlaintext(t *testing.T) {
	path := writeFile(t, "shop.txt", "We sell shoes and hats.")

	text, err := NewPlaintext().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "We sell shoes and hats.", text)
}

func TestHTML_ScrapesReadableText(t *testing.T) {
	page := `<html><head><title>Shop Catalog</title><script>ignored()</script></head>
<body><main><h1>Products</h1><p>We sell shoes.</p><ul><li>Hats</li></ul></main></body></html>`
	path := writeFile(t, "page.html", page)

	text, err := NewHTML().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, text, "Shop Catalog")
	assert.Contains(t, text, "Products")
	assert.Contains(t, text, "We sell shoes.")
	assert.Contains(t, text, "Hats")
	assert.NotContains(t, text, "ignored")
}

func TestXLSX_FlattensRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "shoes"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "49.90"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "hats"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	text, err := NewXLSX().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, text, "shoes | 49.90")
	assert.Contains(t, text, "hats")
}

func TestPDF_TextLayer(t *testing.T) {
	runner := &mockRunner{outputs: map[string][]byte{
		"pdftotext": []byte("We sell shoes and hats. Our store opens at nine in the morning every day."),
	}}

	text, err := NewPDF(runner).Extract(context.Background(), "catalog.pdf")
	require.NoError(t, err)
	assert.Contains(t, text, "We sell shoes")
	assert.Equal(t, []string{"pdftotext"}, runner.calls)
}

func TestPDF_ScannedFallsBackToOCR(t *testing.T) {
	runner := &mockRunner{outputs: map[string][]byte{
		"pdftotext": []byte("x"), // too short: treated as scanned
	}}

	_, err := NewPDF(runner).Extract(context.Background(), "scan.pdf")
	require.NoError(t, err)
	assert.Contains(t, runner.calls, "pdftoppm")
}

func TestPDF_MissingToolsReturnsMarker(t *testing.T) {
	runner := &mockRunner{errs: map[string]error{"pdftotext": notFound("pdftotext")}}

	text, err := NewPDF(runner).Extract(context.Background(), "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "[Error: OCR tools missing. Cannot read scanned PDF.]", text)
}

func TestPDF_ReadFailureReturnsMarker(t *testing.T) {
	runner := &mockRunner{errs: map[string]error{"pdftotext": errors.New("corrupt file")}}

	text, err := NewPDF(runner).Extract(context.Background(), "bad.pdf")
	require.NoError(t, err)
	assert.Contains(t, text, "[Error reading PDF:")
}

func TestImage_OCR(t *testing.T) {
	runner := &mockRunner{outputs: map[string][]byte{"tesseract": []byte("SALE 50% OFF\n")}}

	text, err := NewImage(runner).Extract(context.Background(), "banner.png")
	require.NoError(t, err)
	assert.Equal(t, "SALE 50% OFF", text)
}

func TestImage_OCRFailureReturnsMarker(t *testing.T) {
	runner := &mockRunner{errs: map[string]error{"tesseract": notFound("tesseract")}}

	text, err := NewImage(runner).Extract(context.Background(), "banner.png")
	require.NoError(t, err)
	assert.Contains(t, text, "[OCR Error:")
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(context.Context, string) (string, error) {
	return f.text, f.err
}

func TestAudio_Transcript(t *testing.T) {
	a := NewAudio(&fakeTranscriber{text: "we also stock winter gloves"})

	text, err := a.Extract(context.Background(), "note.mp3")
	require.NoError(t, err)
	assert.Equal(t, "[TRANSCRIPT]: we also stock winter gloves", text)
}

func TestAudio_FailureReturnsMarker(t *testing.T) {
	a := NewAudio(&fakeTranscriber{err: errors.New("api down")})

	text, err := a.Extract(context.Background(), "note.mp3")
	require.NoError(t, err)
	assert.Equal(t, "[Error: Could not transcribe audio.]", text)
}
