package ics

import (
	"bytes"
)

const (
	crlf = "\r\n"

	// Maximum octets per physical line, excluding the terminator.
	foldLimit = 75
)

// writer emits RFC 5545 content lines into a buffer, folding every physical
// line at 75 octets. Continuation lines are prefixed with a single space,
// which counts toward their own 75-octet limit. Fold points never land
// inside a multi-byte UTF-8 sequence.
type writer struct {
	buf *bytes.Buffer
}

func newWriter(buf *bytes.Buffer) *writer {
	return &writer{buf: buf}
}

// line writes one logical content line, folded as needed and terminated
// with CRLF.
func (w *writer) line(s string) {
	rest := []byte(s)
	limit := foldLimit
	for len(rest) > limit {
		cut := limit
		for cut > 0 && rest[cut]&0xC0 == 0x80 {
			cut--
		}
		if cut == 0 {
			// A single sequence longer than the limit cannot occur in
			// UTF-8; keep moving rather than loop forever.
			cut = limit
		}

		w.buf.Write(rest[:cut])
		w.buf.WriteString(crlf)
		w.buf.WriteByte(' ')
		rest = rest[cut:]
		limit = foldLimit - 1
	}
	w.buf.Write(rest)
	w.buf.WriteString(crlf)
}

// prop writes a property whose value needs no TEXT escaping (dates,
// durations, URIs, enumerated values).
func (w *writer) prop(name, value string) {
	w.line(name + ":" + value)
}

// textProp writes a TEXT property, escaping the value first. Empty values
// are omitted entirely.
func (w *writer) textProp(name, value string) {
	if value == "" {
		return
	}
	w.line(name + ":" + Escape(value))
}
