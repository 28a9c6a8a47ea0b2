package bridge

import "bytes"

// frameScanner extracts complete JSON objects from a byte stream that
// carries concatenated objects with no delimiter. It tracks string state,
// escape state, and a brace-depth counter outside strings; a complete
// frame is the substring from the first `{` at depth 0 to the matching
// `}` that brings depth back to 0.
//
// This is the only place in the codebase where raw byte-level protocol
// parsing happens.
type frameScanner struct {
	buf []byte

	// Parser state carried across Append calls so an unterminated prefix
	// is retained and resumed on the next chunk.
	pos      int
	depth    int
	inString bool
	escaped  bool
}

// Append adds received bytes to the scan buffer.
func (s *frameScanner) Append(p []byte) {
	s.buf = append(s.buf, p...)
}

// Next returns the next complete JSON object, or (nil, false) when no
// complete frame is available yet. Bytes preceding the first `{` are
// discarded, so corrupted input always makes progress.
func (s *frameScanner) Next() ([]byte, bool) {
	s.discardLeadingGarbage()

	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		switch {
		case s.escaped:
			s.escaped = false
		case s.inString:
			if c == '\\' {
				s.escaped = true
			} else if c == '"' {
				s.inString = false
			}
		case c == '"':
			s.inString = true
		case c == '{':
			s.depth++
		case c == '}':
			s.depth--
			if s.depth == 0 {
				frame := s.buf[:s.pos+1]
				rest := make([]byte, len(s.buf)-s.pos-1)
				copy(rest, s.buf[s.pos+1:])
				s.buf = rest
				s.resetState()
				return frame, true
			}
		}
		s.pos++
	}
	return nil, false
}

// Len reports the number of buffered bytes (for the non-progress guard
// and tests).
func (s *frameScanner) Len() int { return len(s.buf) }

// discardLeadingGarbage drops bytes that cannot start a frame. A buffer
// holding a single byte that is not `{` shrinks by at least one byte per
// pass, so a corrupted stream can never stall the reader.
func (s *frameScanner) discardLeadingGarbage() {
	if s.depth > 0 || s.pos > 0 {
		return // mid-frame, nothing to discard
	}
	start := bytes.IndexByte(s.buf, '{')
	if start < 0 {
		s.buf = nil
		return
	}
	if start > 0 {
		s.buf = s.buf[start:]
	}
}

func (s *frameScanner) resetState() {
	s.pos = 0
	s.depth = 0
	s.inString = false
	s.escaped = false
}
