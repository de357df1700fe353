package handler

import (
	"net/http"
	"strconv"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"
)

// writeError writes a plain-text error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}

// failRequest maps a service error onto its HTTP status and logs
// server-side failures.
func failRequest(w http.ResponseWriter, r *http.Request, logger domain.Logger, err error) {
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", err, "path", r.URL.Path)
	} else {
		logger.Debug("Request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, apperrors.GetMessage(err))
}

// sendArtifact streams a produced artifact as a downloadable attachment.
func sendArtifact(w http.ResponseWriter, artifact *domain.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
