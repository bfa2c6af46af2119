// Package compress provides streaming decompression (and compression) codecs
// for captured time-tag sources.
//
// Long acquisitions produce captures of hundreds of megabytes, so labs tend
// to archive them compressed. Ingestion reads them directly: the codec is
// picked from the file suffix, or from the stream's magic bytes with
// NewDetectingReader.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through
//   - Zstd (format.CompressionZstd): klauspost/compress, or valyala/gozstd with the "gozstd" build tag
//   - S2 (format.CompressionS2): klauspost/compress/s2, also reads Snappy framed streams
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 frame format
//   - XZ (format.CompressionXZ): ulikunitz/xz
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	rc, err := codec.NewReader(f)
//	if err != nil {
//		return err
//	}
//	defer rc.Close()
//
// Thread Safety: codecs are stateless values and safe for concurrent use.
// The readers and writers they return are not.
package compress
