package str

import (
	"golang.org/x/text/encoding"
)

// Encodable reports whether every rune of s can be represented in enc, for
// example [golang.org/x/text/encoding/charmap.ISO8859_1].
func Encodable(s string, enc encoding.Encoding) bool {
	_, err := enc.NewEncoder().String(s)
	return err == nil
}

// Transcode encodes s into enc, substituting replacement for every rune enc
// cannot represent. An empty replacement drops such runes, and so does a
// replacement that is not representable itself.
func Transcode(s string, enc encoding.Encoding, replacement string) []byte {
	e := enc.NewEncoder()
	sub, err := e.Bytes([]byte(replacement))
	if err != nil {
		sub = nil
	}
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := e.Bytes([]byte(string(r)))
		if err != nil {
			out = append(out, sub...)
			continue
		}
		out = append(out, b...)
	}
	return out
}
