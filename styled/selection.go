package styled

import "github.com/npillmayer/fontier"

// ReplaceSelection converts the selection [from…to) of s with format and
// returns the resulting string. Text outside the selection is kept as is.
// Selection boundaries are widened to rune boundaries.
func ReplaceSelection(s string, from, to uint64, format fontier.TextFormat, opts ...fontier.Option) (string, error) {
	spn, err := selection(s, from, to)
	if err != nil {
		return s, err
	}
	converted := fontier.Convert(s[spn.l:spn.r], format, opts...)
	return s[:spn.l] + converted + s[spn.r:], nil
}

// RevertSelection maps the selection [from…to) of s back to plain text, as far as
// possible (see fontier.Denormalize).
func RevertSelection(s string, from, to uint64, opts ...fontier.NormalizerOption) (string, error) {
	spn, err := selection(s, from, to)
	if err != nil {
		return s, err
	}
	n := fontier.NewNormalizer(opts...)
	return s[:spn.l] + n.Denormalize(s[spn.l:spn.r]) + s[spn.r:], nil
}

func selection(s string, from, to uint64) (span, error) {
	if from > to || to > uint64(len(s)) {
		tracer().Errorf("selection [%d,%d) out of bounds for text of length %d", from, to, len(s))
		return span{}, fontier.ErrIndexOutOfBounds
	}
	return toSpan(from, to).contained(s), nil
}
