package handler

import (
	"net/http"
	"strings"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"
)

// PDFHandler handles the PDF-in/PDF-out operations: merge, split,
// compress, protect, unlock and page numbering.
type PDFHandler struct {
	pdfService      domain.PDFService
	compressService domain.CompressService
	logger          domain.Logger
	maxUpload       int64
}

// NewPDFHandler creates a new PDF handler instance
func NewPDFHandler(pdfService domain.PDFService, compressService domain.CompressService, cfg domain.Config, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		pdfService:      pdfService,
		compressService: compressService,
		logger:          logger,
		maxUpload:       cfg.GetMaxFileSize(),
	}
}

// Merge handles POST /api/merge: files[] -> merged.pdf
func (h *PDFHandler) Merge(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	files, err := formFiles(r, "files", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.pdfService.Merge(files)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// Split handles POST /api/split: file + optional pages spec -> split.pdf
func (h *PDFHandler) Split(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	pages := strings.TrimSpace(r.FormValue("pages"))

	artifact, err := h.pdfService.Split(file, pages)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// Compress handles POST /api/compress: file + level -> compressed.pdf
func (h *PDFHandler) Compress(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	level := r.FormValue("level")
	if level == "" {
		level = domain.CompressEbook
	}

	artifact, err := h.compressService.Compress(file, level)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// Protect handles POST /api/protect: file + password -> protected.pdf
func (h *PDFHandler) Protect(w http.ResponseWriter, r *http.Request) {
	file, password, err := h.fileWithPassword(w, r)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.pdfService.Protect(file, password)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// Unlock handles POST /api/unlock: file + password -> unlocked.pdf,
// 401 when the password does not decrypt the document.
func (h *PDFHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	file, password, err := h.fileWithPassword(w, r)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.pdfService.Unlock(file, password)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// PageNumber handles POST /api/page-number: file -> numbered.pdf
func (h *PDFHandler) PageNumber(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.pdfService.AddPageNumbers(file)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

func (h *PDFHandler) fileWithPassword(w http.ResponseWriter, r *http.Request) (domain.UploadedFile, string, error) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		return domain.UploadedFile{}, "", err
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		return domain.UploadedFile{}, "", err
	}
	password := strings.TrimSpace(r.FormValue("password"))
	if password == "" {
		return domain.UploadedFile{}, "", apperrors.NewValidationError("password required")
	}
	return file, password, nil
}
