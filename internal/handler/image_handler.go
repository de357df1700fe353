package handler

import (
	"net/http"
	"strconv"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"
)

// ImageHandler handles conversions between PDF pages and JPEG images.
type ImageHandler struct {
	imageService domain.ImageService
	logger       domain.Logger
	maxUpload    int64
}

// NewImageHandler creates a new image handler instance
func NewImageHandler(imageService domain.ImageService, cfg domain.Config, logger domain.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		logger:       logger,
		maxUpload:    cfg.GetMaxFileSize(),
	}
}

// PDFToJPG handles POST /api/pdf-to-jpg: file + optional dpi -> images.zip
func (h *ImageHandler) PDFToJPG(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	dpi := domain.DefaultDPI
	if raw := r.FormValue("dpi"); raw != "" {
		dpi, err = strconv.Atoi(raw)
		if err != nil || dpi <= 0 {
			failRequest(w, r, h.logger, apperrors.NewValidationError("dpi must be a positive integer", raw))
			return
		}
	}

	artifact, err := h.imageService.PDFToImages(file, dpi)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// JPGToPDF handles POST /api/jpg-to-pdf: files[] (JPEGs) -> converted.pdf
func (h *ImageHandler) JPGToPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	files, err := formFiles(r, "files", domain.TypeJPEG)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.imageService.ImagesToPDF(files)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}
