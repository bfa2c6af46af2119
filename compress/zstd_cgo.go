//go:build cgo && gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// NewReader returns a streaming cgo zstd decoder over r.
func (ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// NewWriter returns a streaming cgo zstd encoder writing to w.
func (ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriteCloser{zw: gozstd.NewWriterLevel(w, gozstd.DefaultCompressionLevel)}, nil
}

type gozstdReadCloser struct {
	zr *gozstd.Reader
}

func (r *gozstdReadCloser) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *gozstdReadCloser) Close() error {
	r.zr.Release()
	return nil
}

type gozstdWriteCloser struct {
	zw *gozstd.Writer
}

func (w *gozstdWriteCloser) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

// Close finalizes the frame, then releases the C encoder.
func (w *gozstdWriteCloser) Close() error {
	err := w.zw.Close()
	w.zw.Release()

	return err
}
