package compress

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/coinc/errs"
	"github.com/arloliu/coinc/format"
)

// Decompressor wraps a compressed capture stream.
//
// The returned reader yields the decompressed bytes. Closing it releases
// codec resources but never closes the underlying reader.
type Decompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Compressor wraps a destination stream.
//
// Closing the returned writer flushes the final frame but never closes the
// underlying writer. Used to produce fixtures and archived captures.
type Compressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// Codec combines both directions for one compression type.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the compression type handled by the codec.
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
	format.CompressionXZ:   NewXZCodec(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Codec instance for the type
//   - error: errs.ErrUnsupportedCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// NewReader wraps r with the decompressor for compressionType.
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	rc, err := codec.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s reader: %w", compressionType, err)
	}

	return rc, nil
}

// NewDetectingReader sniffs the leading bytes of r and wraps it with the
// matching decompressor. Streams without a known signature pass through.
//
// Returns:
//   - io.ReadCloser: Decompressed stream
//   - format.CompressionType: The detected compression
//   - error: Read error while sniffing, or codec construction error
func NewDetectingReader(r io.Reader) (io.ReadCloser, format.CompressionType, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(format.MagicLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, format.CompressionNone, err
	}

	comp := format.DetectCompressionByMagic(header)
	rc, err := NewReader(br, comp)
	if err != nil {
		return nil, comp, err
	}

	return rc, comp, nil
}
