//go:build !cgo || !gozstd

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewReader returns a streaming zstd decoder over r.
// The decoder runs single-threaded; ingestion is the only consumer.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		return nil, err
	}

	return dec.IOReadCloser(), nil
}

// NewWriter returns a streaming zstd encoder writing to w.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}
