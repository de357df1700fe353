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

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// gsPresets maps the public quality levels onto Ghostscript
// -dPDFSETTINGS values.
var gsPresets = map[string]string{
	domain.CompressScreen:  "/screen",
	domain.CompressEbook:   "/ebook",
	domain.CompressPrinter: "/printer",
}

// CompressService implements domain.CompressService as a two-step
// strategy: Ghostscript recompression first, and on any failure of the
// primary (binary missing, non-zero exit) a structural optimization
// pass with pdfcpu. Only when both fail does the request fail.
type CompressService struct {
	gsBin  string
	logger domain.Logger
}

// NewCompressService creates a new compression service instance
func NewCompressService(cfg domain.Config, logger domain.Logger) *CompressService {
	return &CompressService{
		gsBin:  cfg.GetGhostscriptBin(),
		logger: logger,
	}
}

// Compress recompresses a PDF with the given quality level. Unknown
// levels fall back to ebook.
func (s *CompressService) Compress(file domain.UploadedFile, level string) (*domain.Artifact, error) {
	preset, ok := gsPresets[level]
	if !ok {
		preset = gsPresets[domain.CompressEbook]
	}

	dir, cleanup, err := scratchDir()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, file.Data, 0o600); err != nil {
		return nil, apperrors.NewInternalError("could not stage uploaded file", err)
	}

	out := filepath.Join(dir, "compressed.pdf")
	if err := s.runGhostscript(in, out, preset); err != nil {
		s.logger.Warn("Ghostscript compression failed, falling back to structural optimization", "error", err)
		if err := api.OptimizeFile(in, out, nil); err != nil {
			return nil, apperrors.NewProcessingError("could not compress PDF", err)
		}
	}

	return readArtifact(out, "compressed.pdf", domain.MIMEPDF)
}

func (s *CompressService) runGhostscript(in, out, preset string) error {
	cmd := exec.Command(s.gsBin,
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.5",
		"-dPDFSETTINGS="+preset,
		"-dNOPAUSE", "-dQUIET", "-dBATCH",
		"-sOutputFile="+out,
		in,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", s.gsBin, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
