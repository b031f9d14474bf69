package copier

import "testing"

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"star+wars+poster.png", "star wars poster.png"},
		{"photos/2024/captain%20tsubasa.jpg", "photos/2024/captain tsubasa.jpg"},
		{"a%2Bb.txt", "a+b.txt"},
		{"plain-name.txt", "plain-name.txt"},
		{"", ""},
		{"caf%C3%A9.png", "café.png"},
		{"100%+done%zz", "100% done%zz"},
		{"trailing%4", "trailing%4"},
		{"bad%ff.txt", "bad\uFFFD.txt"},
		{"bad%ff%zz", "bad\uFFFD%zz"},
	}
	for _, tc := range cases {
		if got := DecodeKey(tc.raw); got != tc.want {
			t.Errorf("DecodeKey(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDecodeKeyIdempotentOnPlainNames(t *testing.T) {
	for _, s := range []string{"report.pdf", "dir/sub dir/file name.txt", "star wars", ""} {
		once := DecodeKey(s)
		if twice := DecodeKey(once); twice != once {
			t.Errorf("DecodeKey not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}
