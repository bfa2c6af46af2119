package rolling

import (
	"context"
	"fmt"

	"github.com/arloliu/coinc/ingest"
)

// ChunkFunc observes the window after the chunk read from path was appended.
// A non-nil error stops the replay.
type ChunkFunc func(path string, chunk *ingest.Result, w *Window) error

// Replay reads the capture files in paths in order, appends each to w and
// calls fn after every append. fn may be nil.
//
// The context is checked before every file; cancellation returns ctx.Err()
// with the chunks already appended kept in w.
//
// Example:
//
//	paths, _ := ingest.Discover("captures/*.bin")
//	err := rolling.Replay(ctx, w, paths, func(path string, _ *ingest.Result, w *rolling.Window) error {
//		wm, _ := w.Watermark()
//		log.Printf("%s: watermark %d", path, wm)
//		return nil
//	}, ingest.WithExposure(1))
func Replay(ctx context.Context, w *Window, paths []string, fn ChunkFunc, opts ...ingest.Option) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := ingest.ReadFile(path, opts...)
		if err != nil {
			return fmt.Errorf("replay %s: %w", path, err)
		}
		w.AppendChunk(res.Channels)

		if fn != nil {
			if err := fn(path, res, w); err != nil {
				return err
			}
		}
	}

	return nil
}
