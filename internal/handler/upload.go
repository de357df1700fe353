package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"
)

// multipartMemory is the in-memory threshold for multipart parsing;
// larger parts spill to disk and are cleaned up by net/http.
const multipartMemory = 32 << 20

// parseUploadForm caps the request body at the configured upload limit
// and parses the multipart form. Oversized or malformed bodies fail
// validation before any file is touched.
func parseUploadForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return apperrors.NewValidationError("could not read upload, body missing, malformed or too large")
	}
	return nil
}

// formFiles reads all uploads of a multi-file field, validating each
// against the operation's accepted type signature. The whole request
// fails on the first unacceptable file, naming it.
func formFiles(r *http.Request, field string, ft domain.FileType) ([]domain.UploadedFile, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, apperrors.NewValidationError("no files uploaded")
	}

	headers := r.MultipartForm.File[field]
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, hdr := range headers {
		f, err := readUpload(hdr)
		if err != nil {
			return nil, err
		}
		if !ft.Accepts(f.Filename, f.ContentType) {
			return nil, apperrors.NewValidationError("invalid file type", f.Filename)
		}
		files = append(files, f)
	}
	return files, nil
}

// formFile reads the single upload of a required field and validates
// its declared type.
func formFile(r *http.Request, field string, ft domain.FileType) (domain.UploadedFile, error) {
	file, hdr, err := r.FormFile(field)
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewValidationError(ft.Name + " required")
	}
	_ = file.Close()

	f, err := readUpload(hdr)
	if err != nil {
		return domain.UploadedFile{}, err
	}
	if !ft.Accepts(f.Filename, f.ContentType) {
		return domain.UploadedFile{}, apperrors.NewValidationError(ft.Name+" required", f.Filename)
	}
	return f, nil
}

func readUpload(hdr *multipart.FileHeader) (domain.UploadedFile, error) {
	src, err := hdr.Open()
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("could not open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return domain.UploadedFile{}, apperrors.NewInternalError("could not read uploaded file", err)
	}

	// Strip any client-supplied path components.
	name := strings.TrimSpace(filepath.Base(hdr.Filename))
	if name == "." || name == string(filepath.Separator) {
		name = ""
	}

	return domain.UploadedFile{
		Filename:    name,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
