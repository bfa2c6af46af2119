package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/coinc/errs"
)

// readBufferSize bounds a single CSV row. Longer rows are malformed.
const readBufferSize = 64 * 1024

// ReadCSV ingests "timestamp,channel[,...]" rows from r.
//
// Columns after the channel are ignored. Blank rows are skipped; rows
// without a comma or with an unparsable timestamp or channel (a header row,
// for instance) are counted as malformed and skipped, as are rows longer than
// 64 KiB. Surrounding
// whitespace around either token is tolerated.
//
// Parameters:
//   - r: Source stream, read to EOF
//   - opts: Ingestion options
//
// Returns:
//   - *Result: Ingested channels and read statistics
//   - error: Invalid option, or errs.ErrUnreadableSource when r fails
func ReadCSV(r io.Reader, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return readCSV(r, cfg, "csv")
}

func readCSV(r io.Reader, cfg *Config, source string) (*Result, error) {
	b := newBuilder(cfg)

	br := bufio.NewReaderSize(r, readBufferSize)
	overlong := false
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			overlong = true
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: %w", errs.ErrUnreadableSource, source, err)
		}

		switch {
		case overlong:
			overlong = false
			b.malformed()
		case len(bytes.TrimSpace(line)) == 0:
			// blank
		default:
			if tick, channel, ok := parseRow(line); ok {
				b.add(tick, channel)
			} else {
				b.malformed()
			}
		}

		if err != nil {
			break
		}
	}

	return b.result(source), nil
}

func parseRow(line []byte) (int64, int, bool) {
	first := bytes.IndexByte(line, ',')
	if first < 0 {
		return 0, 0, false
	}

	rest := line[first+1:]
	if second := bytes.IndexByte(rest, ','); second >= 0 {
		rest = rest[:second]
	}

	tick, err := strconv.ParseInt(string(bytes.TrimSpace(line[:first])), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	channel, err := strconv.Atoi(string(bytes.TrimSpace(rest)))
	if err != nil {
		return 0, 0, false
	}

	return tick, channel, true
}
