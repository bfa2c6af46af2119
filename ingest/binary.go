package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/coinc/endian"
	"github.com/arloliu/coinc/errs"
)

const binaryReadBufferSize = 256 * 1024

// ReadBinary ingests fixed-size time-tag records from r.
//
// The first WithHeaderSize bytes (40 by default) are skipped. Each record is
// a uint64 tick followed by a uint16 zero-based channel selector, decoded
// little-endian unless WithBigEndian is set; the selector is shifted by one
// so the first input is channel 1. A source shorter than its header yields
// an empty result, and a truncated trailing record ends the stream.
//
// Parameters:
//   - r: Source stream, read to EOF
//   - opts: Ingestion options
//
// Returns:
//   - *Result: Ingested channels and read statistics
//   - error: Invalid option, or errs.ErrUnreadableSource when r fails
func ReadBinary(r io.Reader, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return readBinary(r, cfg, "binary")
}

func readBinary(r io.Reader, cfg *Config, source string) (*Result, error) {
	b := newBuilder(cfg)
	br := bufio.NewReaderSize(r, binaryReadBufferSize)

	if _, err := br.Discard(cfg.headerSize); err != nil {
		if errors.Is(err, io.EOF) {
			return b.result(source), nil
		}

		return nil, fmt.Errorf("%w: %s: header: %w", errs.ErrUnreadableSource, source, err)
	}

	var rec [endian.RecordSize]byte
	for {
		_, err := io.ReadFull(br, rec[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errs.ErrUnreadableSource, source, err)
		}

		tick, channel := endian.DecodeRecord(cfg.engine, rec[:])
		b.add(int64(tick), int(channel)+1) //nolint:gosec
	}

	return b.result(source), nil
}
