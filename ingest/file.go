package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/arloliu/coinc/compress"
	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/format"
	"github.com/bmatcuk/doublestar/v4"
)

// ReadFile ingests the capture at path.
//
// The layout comes from WithFormat, or from the name: ".bin" is binary,
// anything else CSV. Compression comes from WithCompression, then from a
// ".zst", ".zstd", ".s2", ".sz", ".lz4" or ".xz" suffix, then from the
// stream's leading bytes.
//
//	res, err := ingest.ReadFile("2025-11-19/run.bin.zst")
//
// Returns:
//   - *Result: Ingested channels and read statistics
//   - error: Invalid option, errs.ErrUnsupportedCompression, or
//     errs.ErrUnreadableSource when the file cannot be opened or read
func ReadFile(path string, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnreadableSource, err)
	}
	defer f.Close()

	srcFormat, comp := format.DetectFromName(path)
	if cfg.format != format.FormatUnknown {
		srcFormat = cfg.format
	}

	var rc io.ReadCloser
	switch {
	case cfg.compression != 0:
		rc, err = compress.NewReader(f, cfg.compression)
	case comp != format.CompressionNone:
		rc, err = compress.NewReader(f, comp)
	default:
		rc, comp, err = compress.NewDetectingReader(f)
	}
	if err != nil {
		if errors.Is(err, errs.ErrUnsupportedCompression) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s: %w", errs.ErrUnreadableSource, path, err)
	}
	defer rc.Close()

	cfg.logger.Debug("opening capture", "path", path, "format", srcFormat, "compression", comp)

	if srcFormat == format.FormatBinary {
		return readBinary(rc, cfg, path)
	}

	return readCSV(rc, cfg, path)
}

// Discover returns the files matching a doublestar pattern (for example
// "captures/**/*.bin*"), sorted lexically so chunks named by time replay in
// order. Directories never match.
func Discover(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("%w: pattern %q", errs.ErrInvalidArgument, pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnreadableSource, err)
	}
	slices.Sort(matches)

	return matches, nil
}
