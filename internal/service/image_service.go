package service

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const jpegQuality = 90

// ImageService implements domain.ImageService. Rasterization runs
// in-memory through go-fitz; image-to-PDF packing goes through a
// scratch directory and pdfcpu's image import.
type ImageService struct {
	logger domain.Logger
}

// NewImageService creates a new image service instance
func NewImageService(logger domain.Logger) *ImageService {
	return &ImageService{logger: logger}
}

// PDFToImages rasterizes every page at the given DPI and returns a zip
// archive with one JPEG per page, named page_1.jpg .. page_N.jpg in
// page order.
func (s *ImageService) PDFToImages(file domain.UploadedFile, dpi int) (*domain.Artifact, error) {
	if dpi <= 0 {
		dpi = domain.DefaultDPI
	}

	doc, err := fitz.NewFromMemory(file.Data)
	if err != nil {
		return nil, apperrors.NewProcessingError("could not open PDF", err)
	}
	defer doc.Close()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		img, err := doc.ImageDPI(pageNum, float64(dpi))
		if err != nil {
			return nil, apperrors.NewProcessingError(
				fmt.Sprintf("could not render page %d", pageNum+1), err)
		}
		entry, err := zw.Create(fmt.Sprintf("page_%d.jpg", pageNum+1))
		if err != nil {
			return nil, apperrors.NewInternalError("could not write zip entry", err)
		}
		if err := jpeg.Encode(entry, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, apperrors.NewInternalError("could not encode page image", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, apperrors.NewInternalError("could not finalize zip archive", err)
	}

	return &domain.Artifact{
		Filename:    "images.zip",
		ContentType: domain.MIMEZip,
		Data:        buf.Bytes(),
	}, nil
}

// ImagesToPDF packs the uploaded images, in input order, into pages of
// one PDF.
func (s *ImageService) ImagesToPDF(files []domain.UploadedFile) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	inputs := make([]string, 0, len(files))
	for i, f := range files {
		path := filepath.Join(dir, fmt.Sprintf("img_%03d.jpg", i))
		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			return nil, apperrors.NewInternalError("could not stage uploaded file", err)
		}
		inputs = append(inputs, path)
	}

	out := filepath.Join(dir, "converted.pdf")
	if err := api.ImportImagesFile(inputs, out, nil, nil); err != nil {
		return nil, apperrors.NewProcessingError("could not convert images to PDF", err)
	}

	return readArtifact(out, "converted.pdf", domain.MIMEPDF)
}
