package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"pdf-master-pro/internal/domain"
)

// Mock logger for handler testing
type MockHandlerLogger struct{}

func NewMockHandlerLogger() *MockHandlerLogger { return &MockHandlerLogger{} }

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})        {}
func (l *MockHandlerLogger) Error(msg string, err error, f ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})       {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})        {}

// Mock config for handler testing
type MockConfig struct{}

func (c *MockConfig) GetServerPort() string     { return "8080" }
func (c *MockConfig) GetMaxFileSize() int64     { return 50 * 1024 * 1024 }
func (c *MockConfig) GetLogLevel() string       { return "info" }
func (c *MockConfig) GetGhostscriptBin() string { return "gs" }
func (c *MockConfig) GetSofficeBin() string     { return "soffice" }

// MockPDFService records the arguments of the last call and returns a
// canned artifact or error.
type MockPDFService struct {
	Artifact *domain.Artifact
	Err      error

	GotFiles    []domain.UploadedFile
	GotFile     domain.UploadedFile
	GotPages    string
	GotPassword string
	Calls       int
}

func (m *MockPDFService) Merge(files []domain.UploadedFile) (*domain.Artifact, error) {
	m.Calls++
	m.GotFiles = files
	return m.Artifact, m.Err
}

func (m *MockPDFService) Split(file domain.UploadedFile, pages string) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	m.GotPages = pages
	return m.Artifact, m.Err
}

func (m *MockPDFService) Protect(file domain.UploadedFile, password string) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	m.GotPassword = password
	return m.Artifact, m.Err
}

func (m *MockPDFService) Unlock(file domain.UploadedFile, password string) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	m.GotPassword = password
	return m.Artifact, m.Err
}

func (m *MockPDFService) AddPageNumbers(file domain.UploadedFile) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	return m.Artifact, m.Err
}

type MockCompressService struct {
	Artifact *domain.Artifact
	Err      error

	GotFile  domain.UploadedFile
	GotLevel string
	Calls    int
}

func (m *MockCompressService) Compress(file domain.UploadedFile, level string) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	m.GotLevel = level
	return m.Artifact, m.Err
}

type MockConvertService struct {
	Artifact *domain.Artifact
	Err      error

	GotFile domain.UploadedFile
	Calls   int
}

func (m *MockConvertService) PDFToWord(file domain.UploadedFile) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	return m.Artifact, m.Err
}

func (m *MockConvertService) WordToPDF(file domain.UploadedFile) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	return m.Artifact, m.Err
}

type MockImageService struct {
	Artifact *domain.Artifact
	Err      error

	GotFile  domain.UploadedFile
	GotFiles []domain.UploadedFile
	GotDPI   int
	Calls    int
}

func (m *MockImageService) PDFToImages(file domain.UploadedFile, dpi int) (*domain.Artifact, error) {
	m.Calls++
	m.GotFile = file
	m.GotDPI = dpi
	return m.Artifact, m.Err
}

func (m *MockImageService) ImagesToPDF(files []domain.UploadedFile) (*domain.Artifact, error) {
	m.Calls++
	m.GotFiles = files
	return m.Artifact, m.Err
}

// formUpload is one file part of a multipart test request.
type formUpload struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// multipartBody builds a multipart request body with the given file
// parts and form values, returning the body and its content type.
func multipartBody(t *testing.T, uploads []formUpload, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, u := range uploads {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, u.field, u.filename))
		if u.contentType != "" {
			hdr.Set("Content-Type", u.contentType)
		}
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("failed to create multipart part: %v", err)
		}
		if _, err := part.Write(u.data); err != nil {
			t.Fatalf("failed to write multipart part: %v", err)
		}
	}
	for k, v := range values {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func pdfArtifact(name string) *domain.Artifact {
	return &domain.Artifact{
		Filename:    name,
		ContentType: domain.MIMEPDF,
		Data:        []byte("%PDF-1.7 fake"),
	}
}
