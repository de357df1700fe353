package service

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pdf-master-pro/internal/domain"
	apperrors "pdf-master-pro/pkg/errors"

	docx "github.com/fumiama/go-docx"
	"github.com/gen2brain/go-fitz"
)

// ConvertService implements domain.ConvertService. PDF to Word runs
// in-process: page text is extracted with go-fitz and rebuilt as DOCX
// paragraphs. Word to PDF shells out to headless LibreOffice and is
// unavailable when the soffice binary is not installed.
type ConvertService struct {
	sofficeBin string
	logger     domain.Logger
}

// NewConvertService creates a new conversion service instance
func NewConvertService(cfg domain.Config, logger domain.Logger) *ConvertService {
	return &ConvertService{
		sofficeBin: cfg.GetSofficeBin(),
		logger:     logger,
	}
}

// PDFToWord converts the whole document into an editable DOCX file.
// Layout is not preserved; each text paragraph of each page becomes
// one document paragraph.
func (s *ConvertService) PDFToWord(file domain.UploadedFile) (*domain.Artifact, error) {
	doc, err := fitz.NewFromMemory(file.Data)
	if err != nil {
		return nil, apperrors.NewProcessingError("could not open PDF", err)
	}
	defer doc.Close()

	w := docx.New().WithDefaultTheme()
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			s.logger.Warn("Failed to extract text from page", "page", pageNum+1, "error", err)
			continue
		}
		for _, para := range splitIntoParagraphs(text) {
			w.AddParagraph().AddText(para).Size("11")
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, apperrors.NewProcessingError("could not write DOCX", err)
	}

	return &domain.Artifact{
		Filename:    "converted.docx",
		ContentType: domain.MIMEDocx,
		Data:        buf.Bytes(),
	}, nil
}

// WordToPDF converts a DOCX file to PDF via headless LibreOffice.
func (s *ConvertService) WordToPDF(file domain.UploadedFile) (*domain.Artifact, error) {
	if _, err := exec.LookPath(s.sofficeBin); err != nil {
		return nil, apperrors.NewUnavailableError("LibreOffice not available on server; install the soffice binary or use the provided Dockerfile")
	}

	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "input.docx")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	cmd := exec.Command(s.sofficeBin, "--headless", "--convert-to", "pdf", "--outdir", dir, in)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, apperrors.NewProcessingError("could not convert DOCX to PDF",
			fmt.Errorf("%s: %w: %s", s.sofficeBin, err, strings.TrimSpace(stderr.String())))
	}

	// soffice writes <input basename>.pdf into the output directory.
	out := filepath.Join(dir, "input.pdf")
	artifact, err := readArtifact(out, "converted.pdf", domain.MIMEPDF)
	if err != nil {
		return nil, apperrors.NewProcessingError("conversion produced no output", err)
	}
	return artifact, nil
}

// splitIntoParagraphs splits extracted page text into paragraphs on
// blank lines, collapsing single line breaks into spaces.
func splitIntoParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.ReplaceAll(para, "\n", " ")
		para = strings.TrimSpace(sanitizeText(para))
		if para != "" {
			result = append(result, para)
		}
	}
	return result
}

// sanitizeText drops control characters that are not representable in
// DOCX document XML.
func sanitizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0x09 || r == 0x0A || r == 0x0D || r >= 0x20 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
