package handler

import (
	"net/http"

	"pdf-master-pro/internal/domain"
)

// ConvertHandler handles format conversions between PDF and DOCX.
type ConvertHandler struct {
	convertService domain.ConvertService
	logger         domain.Logger
	maxUpload      int64
}

// NewConvertHandler creates a new conversion handler instance
func NewConvertHandler(convertService domain.ConvertService, cfg domain.Config, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertService: convertService,
		logger:         logger,
		maxUpload:      cfg.GetMaxFileSize(),
	}
}

// PDFToWord handles POST /api/pdf-to-word: file -> converted.docx
func (h *ConvertHandler) PDFToWord(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypePDF)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.convertService.PDFToWord(file)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}

// WordToPDF handles POST /api/word-to-pdf: file (.docx) -> converted.pdf.
// Responds 500 with a remediation message when LibreOffice is not
// installed on the host.
func (h *ConvertHandler) WordToPDF(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r, h.maxUpload); err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	file, err := formFile(r, "file", domain.TypeWord)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}

	artifact, err := h.convertService.WordToPDF(file)
	if err != nil {
		failRequest(w, r, h.logger, err)
		return
	}
	sendArtifact(w, artifact)
}
