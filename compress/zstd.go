package compress

import "github.com/arloliu/coinc/format"

// ZstdCodec reads and writes Zstandard capture streams.
//
// Zstd gives the best ratio of the supported codecs on time-tag captures,
// where consecutive ticks share their high bytes. Two implementations exist:
// the pure-Go klauspost/compress decoder (default) and the cgo
// valyala/gozstd binding, selected with the "gozstd" build tag when cgo is
// available.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec.
//
// Example:
//
//	rc, err := compress.NewZstdCodec().NewReader(f)
//	if err != nil {
//		return err
//	}
//	defer rc.Close()
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) Type() format.CompressionType { return format.CompressionZstd }
