package copier

import (
	"encoding/hex"
	"net/url"
	"strings"
)

// DecodeKey reverses the form encoding S3 applies to object keys in
// notifications: '+' becomes a space and %XX escapes are decoded. Malformed
// escapes are kept literally instead of failing the whole key. Bytes that do not
// form valid UTF-8 are replaced with U+FFFD.
func DecodeKey(raw string) string {
	if decoded, err := url.QueryUnescape(raw); err == nil {
		return strings.ToValidUTF8(decoded, "\uFFFD")
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(raw) {
				if v, err := hex.DecodeString(raw[i+1 : i+3]); err == nil {
					b.Write(v)
					i += 2
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}
