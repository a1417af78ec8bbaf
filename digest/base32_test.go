package digest

import (
	"bytes"
	"testing"
)

// Hand-computed anchors for the reversed bit order: 0xff packs its low
// five bits into the last character and its high three into the first.
func TestBase32Anchors(t *testing.T) {
	cases := []struct {
		raw  []byte
		want string
	}{
		{[]byte{0x00}, "00"},
		{[]byte{0xff}, "7z"},
		{[]byte{0x1f}, "0z"},
	}
	for _, c := range cases {
		if got := base32Encode(c.raw); got != c.want {
			t.Errorf("base32Encode(%x) = %q, want %q", c.raw, got, c.want)
		}
		back, err := base32Decode(c.want, len(c.raw))
		if err != nil {
			t.Fatalf("base32Decode(%q): %v", c.want, err)
		}
		if !bytes.Equal(back, c.raw) {
			t.Errorf("base32Decode(%q) = %x, want %x", c.want, back, c.raw)
		}
	}
}

func TestBase32Lengths(t *testing.T) {
	// 32 raw bytes encode to 52 characters, 20 to 32, 16 to 26.
	lengths := map[int]int{16: 26, 20: 32, 32: 52, 64: 103}
	for raw, want := range lengths {
		if got := base32Len(raw); got != want {
			t.Errorf("base32Len(%d) = %d, want %d", raw, got, want)
		}
	}
}

func TestBase32RoundTrip(t *testing.T) {
	for _, n := range []int{16, 20, 32, 64} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(i*31 + 7)
		}
		enc := base32Encode(raw)
		if len(enc) != base32Len(n) {
			t.Fatalf("encoded length %d, want %d", len(enc), base32Len(n))
		}
		for i := 0; i < len(enc); i++ {
			if base32Reverse[enc[i]] < 0 {
				t.Fatalf("character %q outside the alphabet", enc[i])
			}
		}
		back, err := base32Decode(enc, n)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !bytes.Equal(back, raw) {
			t.Errorf("round trip changed %d-byte digest", n)
		}
	}
}

func TestBase32DecodeRejectsOverflow(t *testing.T) {
	// The first character of a single-byte encoding holds three bits;
	// 'z' (31) needs five, so the top two overflow past the digest.
	if _, err := base32Decode("zz", 1); err == nil {
		t.Errorf("expected overflow error")
	}
}

func TestBase32DecodeRejectsBadCharacter(t *testing.T) {
	if _, err := base32Decode("0e", 1); err == nil {
		t.Errorf("'e' is outside the alphabet and must be rejected")
	}
}
