package text

import "regexp"

// SearchForward returns the start of the next match of re after pos,
// wrapping around to the buffer begin, or EPOS when nothing matches.
func (t *Text) SearchForward(pos int, re *regexp.Regexp) int {
	if re == nil {
		return EPOS
	}
	pos = t.clamp(pos)
	if pos < len(t.buf) {
		if loc := re.FindIndex(t.buf[pos+1:]); loc != nil {
			return pos + 1 + loc[0]
		}
	}
	if loc := re.FindIndex(t.buf); loc != nil {
		return loc[0]
	}
	return EPOS
}

// SearchBackward returns the start of the last match of re before pos,
// wrapping around to the buffer end, or EPOS when nothing matches.
func (t *Text) SearchBackward(pos int, re *regexp.Regexp) int {
	if re == nil {
		return EPOS
	}
	pos = t.clamp(pos)
	last := EPOS
	for _, loc := range re.FindAllIndex(t.buf, -1) {
		if loc[0] < pos {
			last = loc[0]
		}
	}
	if last != EPOS {
		return last
	}
	// wrap: last match in the whole buffer
	for _, loc := range re.FindAllIndex(t.buf, -1) {
		last = loc[0]
	}
	return last
}
