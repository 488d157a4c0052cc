package styled

import "github.com/npillmayer/fontier"

// Iterator is a “pull”-interface to the style runs of a text.
//
//	it := styled.IterateText(text)
//	for it.Next() {
//	    format, from, to := it.Format()
//	    …
//	}
type Iterator struct {
	runs    []StyleChange
	inx     int
	length  uint64
	lastErr error
}

// IterateText creates an iterator over the style runs of text.
func IterateText(text *Text) *Iterator {
	iterator := &Iterator{
		runs:   text.StyleRuns(),
		length: text.Len(),
	}
	return iterator
}

// Next moves to the next style run. It returns false if there are no more runs.
func (it *Iterator) Next() bool {
	if it.lastErr != nil || it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

// LastError returns the error which stopped the iteration, if any.
func (it *Iterator) LastError() error {
	return it.lastErr
}

// Format returns the format at the current iterator position, together with
// the text indices [from…to) of the style run.
func (it *Iterator) Format() (fontier.TextFormat, uint64, uint64) {
	if it.inx == 0 || it.lastErr != nil {
		return fontier.TextFormat{}, 0, 0
	}
	s := it.runs[it.inx-1]
	if s.Position+s.Length > it.length {
		it.lastErr = fontier.ErrIndexOutOfBounds
		return fontier.TextFormat{}, 0, 0
	}
	return s.Format, s.Position, s.Position + s.Length
}
