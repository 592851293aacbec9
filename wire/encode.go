package wire

import (
	"bytes"
	"io"
	"strings"
)

// Encodable is the single contract every outbound command implements:
// write your byte representation to the sink. Mirrors the teacher's
// UnmarshalBE/UnmarshalLE split being one direction of a single codec
// contract, just inverted for the write path.
type Encodable interface {
	Encode(w io.Writer) error
}

// EncodeToBytes renders an Encodable into a freshly allocated buffer.
func EncodeToBytes(e Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLine writes s to w, appending "\r\n" if s does not already end
// with it. This backs the `raw` command form from spec 4.3.
func WriteLine(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\r\n") {
		s += "\r\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

// WriteCommand writes "<command> <args...>\r\n", joining args with
// spaces. If trailing is non-empty (or forceTrailing is set) it is
// appended as " :<trailing>".
func WriteCommand(w io.Writer, command string, args []string, trailing string, forceTrailing bool) error {
	var b strings.Builder
	b.WriteString(command)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	if trailing != "" || forceTrailing {
		b.WriteString(" :")
		b.WriteString(trailing)
	}
	b.WriteString("\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}
