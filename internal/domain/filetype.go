package domain

import "strings"

// FileType describes the accepted type signature of an operation's
// uploads: a set of lowercased substring markers matched against the
// declared filename and content type.
//
// This is a permissive, metadata-only check. It never inspects file
// content or magic bytes, so a mislabeled upload passes validation and
// fails later inside the collaborator. Known limitation, kept for
// compatibility with existing clients.
type FileType struct {
	// Name is used in validation error messages ("PDF required").
	Name    string
	Markers []string
}

var (
	TypePDF = FileType{
		Name:    "PDF",
		Markers: []string{".pdf", "application/pdf"},
	}
	TypeWord = FileType{
		Name:    "DOCX",
		Markers: []string{".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}
	TypeJPEG = FileType{
		Name:    "JPEG",
		Markers: []string{".jpg", ".jpeg", "image/jpeg"},
	}
)

// Accepts reports whether a file with the given declared filename and
// content type matches this signature. A file is accepted when either
// the lowercased filename or the lowercased content type contains any
// marker.
func (t FileType) Accepts(filename, contentType string) bool {
	name := strings.ToLower(filename)
	ctype := strings.ToLower(contentType)
	for _, m := range t.Markers {
		if strings.Contains(name, m) || strings.Contains(ctype, m) {
			return true
		}
	}
	return false
}
