package domain

// PDFService defines pure PDF-in/PDF-out page operations.
type PDFService interface {
	// Merge concatenates all pages of all inputs, in input order.
	Merge(files []UploadedFile) (*Artifact, error)
	// Split extracts the pages selected by the page-range spec, in
	// ascending order. An empty spec selects every page.
	Split(file UploadedFile, pages string) (*Artifact, error)
	// Protect re-serializes the document and applies password-based
	// encryption.
	Protect(file UploadedFile, password string) (*Artifact, error)
	// Unlock decrypts an encrypted document with the supplied
	// password. Unencrypted documents pass through re-serialized.
	Unlock(file UploadedFile, password string) (*Artifact, error)
	// AddPageNumbers stamps the 1-based page index near the bottom
	// right corner of every page.
	AddPageNumbers(file UploadedFile) (*Artifact, error)
}

// CompressService recompresses a PDF with a quality preset.
type CompressService interface {
	Compress(file UploadedFile, level string) (*Artifact, error)
}

// ConvertService converts between PDF and editable document formats.
type ConvertService interface {
	PDFToWord(file UploadedFile) (*Artifact, error)
	WordToPDF(file UploadedFile) (*Artifact, error)
}

// ImageService converts between PDF pages and JPEG images.
type ImageService interface {
	// PDFToImages rasterizes every page at the given DPI and returns
	// a zip archive with one JPEG per page, named by 1-based page
	// order.
	PDFToImages(file UploadedFile, dpi int) (*Artifact, error)
	// ImagesToPDF packs the images, in input order, into pages of one
	// PDF.
	ImagesToPDF(files []UploadedFile) (*Artifact, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGhostscriptBin() string
	GetSofficeBin() string
}
