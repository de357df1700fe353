package domain

// UploadedFile is a single client upload, scoped to one request.
// Filename and ContentType are client-declared and never verified
// against the actual bytes.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Artifact is the output of one operation, streamed back to the client
// as an attachment and then discarded.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MIME types assigned to produced artifacts.
const (
	MIMEPDF  = "application/pdf"
	MIMEZip  = "application/zip"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Compression presets accepted by the compress operation. Unknown
// levels fall back to ebook.
const (
	CompressScreen  = "screen"
	CompressEbook   = "ebook"
	CompressPrinter = "printer"
)

// DefaultDPI is the rasterization resolution used when the caller does
// not supply a positive value.
const DefaultDPI = 150
