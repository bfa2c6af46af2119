package compress

import (
	"io"

	"github.com/arloliu/coinc/format"
	"github.com/klauspost/compress/s2"
)

// S2Codec reads S2 streams, and Snappy framed streams, which S2 decodes too.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) Type() format.CompressionType { return format.CompressionS2 }

func (S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}

func (S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w), nil
}
