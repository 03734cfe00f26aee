package controllerImp

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"shoopaholic/pkg/extract"
)

const noTextMarker = "[Error: No text could be extracted from this file.]"

type UploadCtrl struct {
	registry  *extract.Registry
	uploadDir string
}

func New(registry *extract.Registry, uploadDir string) *UploadCtrl {
	return &UploadCtrl{registry: registry, uploadDir: uploadDir}
}

func (h *UploadCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "file is required"})
	}

	filename := filepath.Base(fh.Filename)
	ex := h.registry.ByFilename(filename)
	if ex == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "unsupported file type: " + filepath.Ext(filename)})
	}

	path, err := h.save(fh, filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
	defer os.Remove(path)

	text, err := ex.Extract(c.Request().Context(), path)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
	if strings.TrimSpace(text) == "" {
		text = noTextMarker
	}
	return c.JSON(http.StatusOK, map[string]string{
		"filename":       filename,
		"extracted_text": text,
	})
}

func (h *UploadCtrl) save(fh *multipart.FileHeader, filename string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.CreateTemp(h.uploadDir, "upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
