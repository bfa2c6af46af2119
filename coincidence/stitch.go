package coincidence

// StitchNext returns current extended with the first event of next.
//
// When next is empty, current itself is returned and scratch is left
// untouched. Otherwise current and next[0] are copied into *scratch, which
// grows as needed, and the returned slice aliases it. The view is valid until
// scratch is reused.
func StitchNext(current, next []int64, scratch *[]int64) []int64 {
	if len(next) == 0 {
		return current
	}

	buf := append((*scratch)[:0], current...)
	buf = append(buf, next[0])
	*scratch = buf

	return buf
}

// Stitcher owns the scratch buffer of repeated StitchNext calls over one
// channel. The zero value is ready to use; a Stitcher must not be shared
// between goroutines.
type Stitcher struct {
	scratch []int64
}

// Stitch is StitchNext using the stitcher's buffer.
// The returned view is overwritten by the next call.
func (s *Stitcher) Stitch(current, next []int64) []int64 {
	return StitchNext(current, next, &s.scratch)
}
