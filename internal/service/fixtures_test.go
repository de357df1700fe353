package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/gen2brain/go-fitz"

	"pdf-master-pro/internal/domain"
)

// no-op logger for service tests
type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})        {}
func (testLogger) Error(msg string, err error, f ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})       {}
func (testLogger) Warn(msg string, fields ...interface{})        {}

// testConfig lets each test point the external binaries somewhere
// specific, usually nowhere.
type testConfig struct {
	gsBin      string
	sofficeBin string
}

func (c *testConfig) GetServerPort() string     { return "8080" }
func (c *testConfig) GetMaxFileSize() int64     { return 50 * 1024 * 1024 }
func (c *testConfig) GetLogLevel() string       { return "error" }
func (c *testConfig) GetGhostscriptBin() string { return c.gsBin }
func (c *testConfig) GetSofficeBin() string     { return c.sofficeBin }

// makeJPEG renders a solid-color JPEG in memory.
func makeJPEG(t *testing.T, width, height int, c color.Color) domain.UploadedFile {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("failed to encode fixture JPEG: %v", err)
	}
	return domain.UploadedFile{
		Filename:    "page.jpg",
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}
}

// makePDF fabricates a PDF with the given number of pages by packing
// generated JPEGs, keeping the tests independent of any on-disk
// fixtures.
func makePDF(t *testing.T, pages int) domain.UploadedFile {
	t.Helper()

	files := make([]domain.UploadedFile, pages)
	for i := range files {
		// Vary the color so pages are distinguishable.
		files[i] = makeJPEG(t, 200, 300, color.RGBA{R: uint8(40 * (i + 1)), G: 80, B: 120, A: 255})
	}

	svc := NewImageService(testLogger{})
	artifact, err := svc.ImagesToPDF(files)
	if err != nil {
		t.Fatalf("failed to fabricate %d-page PDF: %v", pages, err)
	}
	return domain.UploadedFile{
		Filename:    "fixture.pdf",
		ContentType: "application/pdf",
		Data:        artifact.Data,
	}
}

// pageCount opens a produced PDF and counts its pages.
func pageCount(t *testing.T, data []byte) int {
	t.Helper()

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		t.Fatalf("failed to open produced PDF: %v", err)
	}
	defer doc.Close()
	return doc.NumPage()
}
