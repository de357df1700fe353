package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFService implements domain.PDFService on top of pdfcpu. Every
// method stages its inputs in a scratch directory, runs exactly one
// pdfcpu operation and reads the result back into memory.
type PDFService struct {
	logger domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(logger domain.Logger) *PDFService {
	return &PDFService{logger: logger}
}

// Merge concatenates all pages of all inputs, in input order, into one document.
func (s *PDFService) Merge(files []domain.UploadedFile) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	inputs := make([]string, 0, len(files))
	for i, f := range files {
		path := filepath.Join(dir, fmt.Sprintf("input_%03d.pdf", i))
		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			return nil, apperrors.NewInternalError("could not stage uploaded file", err)
		}
		inputs = append(inputs, path)
	}

	out := filepath.Join(dir, "merged.pdf")
	if err := api.MergeCreateFile(inputs, out, false, nil); err != nil {
		return nil, apperrors.NewProcessingError("could not merge PDF files", err)
	}

	return readArtifact(out, "merged.pdf", domain.MIMEPDF)
}

// Split extracts the pages selected by the page-range spec, in
// ascending order, into a new document.
func (s *PDFService) Split(file domain.UploadedFile, pages string) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	pageCount, err := api.PageCountFile(in)
	if err != nil {
		return nil, apperrors.NewProcessingError("could not read PDF", err)
	}

	selection, err := ParsePageRange(pages, pageCount)
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		return nil, apperrors.NewValidationError("page selection is empty", pages)
	}

	selected := make([]string, len(selection))
	for i, p := range selection {
		selected[i] = strconv.Itoa(p)
	}

	out := filepath.Join(dir, "split.pdf")
	if err := api.CollectFile(in, out, selected, nil); err != nil {
		return nil, apperrors.NewProcessingError("could not extract pages", err)
	}

	return readArtifact(out, "split.pdf", domain.MIMEPDF)
}

// Protect re-serializes the document and encrypts it with the supplied password.
func (s *PDFService) Protect(file domain.UploadedFile, password string) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	out := filepath.Join(dir, "protected.pdf")
	if err := api.EncryptFile(in, out, conf); err != nil {
		return nil, apperrors.NewProcessingError("could not encrypt PDF", err)
	}

	return readArtifact(out, "protected.pdf", domain.MIMEPDF)
}

// Unlock decrypts an encrypted document with the supplied password.
// A document that opens without a password passes through re-serialized.
func (s *PDFService) Unlock(file domain.UploadedFile, password string) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	out := filepath.Join(dir, "unlocked.pdf")

	// If the document opens without a password it is not encrypted;
	// re-serialize it as-is.
	if _, err := api.PageCountFile(in); err == nil {
		if err := rewriteFile(in, out); err != nil {
			return nil, apperrors.NewProcessingError("could not rewrite PDF", err)
		}
		return readArtifact(out, "unlocked.pdf", domain.MIMEPDF)
	}

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password
	if err := api.DecryptFile(in, out, conf); err != nil {
		s.logger.Debug("PDF decryption failed", "error", err)
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, apperrors.NewUnauthorizedError("incorrect password")
		}
		return nil, apperrors.NewProcessingError("could not read PDF", err)
	}

	return readArtifact(out, "unlocked.pdf", domain.MIMEPDF)
}

// AddPageNumbers stamps the 1-based page index near the bottom-right
// corner of every page.
func (s *PDFService) AddPageNumbers(file domain.UploadedFile) (*domain.Artifact, error) {
	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	out := filepath.Join(dir, "numbered.pdf")
	// %p expands to the page number of the stamped page.
	desc := "font:Helvetica, points:10, scale:1 abs, pos:br, off:-50 36, rot:0, fillc:#000000"
	if err := api.AddTextWatermarksFile(in, out, nil, true, "%p", desc, nil); err != nil {
		return nil, apperrors.NewProcessingError("could not stamp page numbers", err)
	}

	return readArtifact(out, "numbered.pdf", domain.MIMEPDF)
}

// readArtifact loads a produced file from the scratch area into an
// in-memory artifact so the scratch directory can be removed before
// the response is written.
// rewriteFile reads a document and writes it back unchanged. pdfcpu has
// no plain re-serialize primitive; an optimize pass with a nil
// configuration is its canonical read-then-write path.
func rewriteFile(in, out string) error {
	return api.OptimizeFile(in, out, nil)
}

func readArtifact(path, filename, contentType string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewInternalError("could not read result file", err)
	}
	return &domain.Artifact{Filename: filename, ContentType: contentType, Data: data}, nil
}
