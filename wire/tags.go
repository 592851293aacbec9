package wire

import (
	"strconv"
	"strings"
)

// tagSpan is a (key-range, value-range) pair over the original line, the
// same index-over-the-source-buffer trick the teacher uses for TLV
// offsets in wire/tlv.go, applied here to IRCv3 message tags instead.
type tagSpan struct {
	keyStart, keyEnd int
	valStart, valEnd int
}

// Tags is the logical key->value projection over a raw line's tag
// segment. It never copies the source string; Get slices it on demand.
type Tags struct {
	src   string
	spans []tagSpan
}

// parseTags consumes a `key=value;key=value` segment (no leading '@',
// already stripped by the caller) and returns the tag index. Duplicate
// keys: last one wins, per spec; spans are appended in encounter order so
// the Get lookup below scans back-to-front.
func parseTags(src string) (Tags, error) {
	if src == "" {
		return Tags{src: src}, nil
	}
	var spans []tagSpan
	pos := 0
	for pos < len(src) {
		end := strings.IndexByte(src[pos:], ';')
		seg := src[pos:]
		segEnd := len(src)
		if end >= 0 {
			seg = src[pos : pos+end]
			segEnd = pos + end
		}
		if seg == "" {
			return Tags{}, ErrMalformedTags
		}
		eq := strings.IndexByte(seg, '=')
		var span tagSpan
		if eq < 0 {
			if seg == "" {
				return Tags{}, ErrMalformedTags
			}
			span = tagSpan{keyStart: pos, keyEnd: pos + len(seg), valStart: pos + len(seg), valEnd: pos + len(seg)}
		} else {
			if eq == 0 {
				return Tags{}, ErrMalformedTags
			}
			span = tagSpan{keyStart: pos, keyEnd: pos + eq, valStart: pos + eq + 1, valEnd: segEnd}
		}
		spans = append(spans, span)
		if end < 0 {
			break
		}
		pos = segEnd + 1
	}
	return Tags{src: src, spans: spans}, nil
}

// Get returns the tag value for key, honoring last-write-wins on
// duplicate keys. Keys are case-sensitive.
func (t Tags) Get(key string) (string, bool) {
	for i := len(t.spans) - 1; i >= 0; i-- {
		s := t.spans[i]
		if t.src[s.keyStart:s.keyEnd] == key {
			return t.src[s.valStart:s.valEnd], true
		}
	}
	return "", false
}

// Map materializes the tag index into a plain map, for callers that want
// to range over every tag rather than look one up.
func (t Tags) Map() map[string]string {
	if len(t.spans) == 0 {
		return nil
	}
	m := make(map[string]string, len(t.spans))
	for _, s := range t.spans {
		m[t.src[s.keyStart:s.keyEnd]] = t.src[s.valStart:s.valEnd]
	}
	return m
}

// Len reports how many distinct keys are present.
func (t Tags) Len() int { return len(t.Map()) }

// Bool parses a tag as "1"/"0" or "true"/"false".
func (t Tags) Bool(key string) (bool, bool) {
	v, ok := t.Get(key)
	if !ok {
		return false, false
	}
	switch v {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	default:
		return false, false
	}
}

// Int parses a tag as a base-10 integer.
func (t Tags) Int(key string) (int64, bool) {
	v, ok := t.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// intoOwned copies the source string so the Tags no longer borrows the
// reader's buffer. Called before fan-out, per the owned/borrowed duality
// in spec 3.
func (t Tags) intoOwned() Tags {
	if t.src == "" {
		return t
	}
	owned := strings.Clone(t.src)
	return Tags{src: owned, spans: t.spans}
}
