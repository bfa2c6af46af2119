package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

type (
	SourceFormat    uint8
	CompressionType uint8
)

const (
	FormatUnknown SourceFormat = 0x0 // FormatUnknown lets readers pick a format from the file name.
	FormatCSV     SourceFormat = 0x1 // FormatCSV represents text rows of "timestamp,channel,...".
	FormatBinary  SourceFormat = 0x2 // FormatBinary represents a fixed header followed by tick+channel records.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed source.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 (or Snappy framed) stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame stream.
	CompressionXZ   CompressionType = 0x5 // CompressionXZ represents an XZ stream.
)

func (f SourceFormat) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionXZ:
		return "XZ"
	default:
		return "Unknown"
	}
}

var compressionSuffixes = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".s2":   CompressionS2,
	".sz":   CompressionS2,
	".lz4":  CompressionLZ4,
	".xz":   CompressionXZ,
}

// Magic byte signatures of the supported stream formats.
var (
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	xzMagic     = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic     = []byte{0xff, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	snappyMagic = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// MagicLen is the number of leading bytes DetectCompressionByMagic inspects.
const MagicLen = 10

// DetectFromName derives the source format and compression from a file name.
//
// A compression suffix is stripped first, so "run.bin.zst" yields
// (FormatBinary, CompressionZstd). Names ending in ".bin" are binary; every
// other name is treated as CSV.
//
// Parameters:
//   - name: File name or path
//
// Returns:
//   - SourceFormat: FormatBinary or FormatCSV
//   - CompressionType: Compression inferred from the suffix, CompressionNone when absent
func DetectFromName(name string) (SourceFormat, CompressionType) {
	base := strings.ToLower(filepath.Base(name))
	comp := CompressionNone

	if c, ok := compressionSuffixes[filepath.Ext(base)]; ok {
		comp = c
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if filepath.Ext(base) == ".bin" {
		return FormatBinary, comp
	}

	return FormatCSV, comp
}

// DetectCompressionByMagic inspects the leading bytes of a stream.
// It returns CompressionNone when no known signature matches.
func DetectCompressionByMagic(header []byte) CompressionType {
	switch {
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXZ
	case bytes.HasPrefix(header, lz4Magic):
		return CompressionLZ4
	case bytes.HasPrefix(header, s2Magic), bytes.HasPrefix(header, snappyMagic):
		return CompressionS2
	default:
		return CompressionNone
	}
}
