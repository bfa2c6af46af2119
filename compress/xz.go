package compress

import (
	"io"

	"github.com/arloliu/coinc/format"
	"github.com/ulikunitz/xz"
)

// XZCodec reads and writes XZ streams, common for archived lab captures.
type XZCodec struct{}

var _ Codec = (*XZCodec)(nil)

// NewXZCodec creates an XZ codec.
func NewXZCodec() XZCodec {
	return XZCodec{}
}

func (XZCodec) Type() format.CompressionType { return format.CompressionXZ }

func (XZCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}

	return io.NopCloser(xr), nil
}

func (XZCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}
