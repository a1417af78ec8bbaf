package digest

import (
	"strings"
	"testing"
)

func TestAlgorithmRoundTrip(t *testing.T) {
	for _, algo := range []Algorithm{MD5, SHA1, SHA256, SHA512} {
		got, err := ParseAlgorithm(algo.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", algo.String(), err)
		}
		if got != algo {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", algo.String(), got, algo)
		}
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	_, err := ParseAlgorithm("sha999")
	if err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
	if !strings.Contains(err.Error(), "sha999") {
		t.Errorf("error should name the bad input, got: %v", err)
	}
}

func TestAlgorithmSizes(t *testing.T) {
	sizes := map[Algorithm]int{MD5: 16, SHA1: 20, SHA256: 32, SHA512: 64}
	for algo, want := range sizes {
		if got := algo.Size(); got != want {
			t.Errorf("%s size = %d, want %d", algo, got, want)
		}
	}
}

func TestNewWrongLength(t *testing.T) {
	_, err := New(SHA256, make([]byte, 20))
	if err == nil {
		t.Fatalf("expected error for 20 bytes under sha256")
	}
}

func TestDigestEquality(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 0xAB
	a := MustNew(SHA256, raw)
	b := MustNew(SHA256, raw)
	if a != b {
		t.Errorf("equal digests must compare equal")
	}
	raw[0] = 0xAC
	c := MustNew(SHA256, raw)
	if a == c {
		t.Errorf("distinct digests must not compare equal")
	}
}

func TestDigestImmutable(t *testing.T) {
	raw := make([]byte, 32)
	d := MustNew(SHA256, raw)
	raw[0] = 0xFF
	if d.Bytes()[0] != 0 {
		t.Errorf("constructor must copy the input")
	}
	d.Bytes()[0] = 0xFF
	if d.Bytes()[0] != 0 {
		t.Errorf("Bytes must return a copy")
	}
}

func TestParseUnprefixedAllEncodings(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	d := MustNew(SHA256, raw)

	for _, enc := range []string{d.Base16(), d.Base32(), d.Base64()} {
		got, err := ParseUnprefixed(enc, SHA256)
		if err != nil {
			t.Fatalf("ParseUnprefixed(%q): %v", enc, err)
		}
		if got != d {
			t.Errorf("ParseUnprefixed(%q) = %v, want %v", enc, got, d)
		}
	}
}

func TestParseUnprefixedWrongLength(t *testing.T) {
	_, err := ParseUnprefixed("abcd", SHA256)
	if err == nil {
		t.Fatalf("expected error for wrong-length digest")
	}
	if !strings.Contains(err.Error(), "abcd") || !strings.Contains(err.Error(), "sha256") {
		t.Errorf("error should name input and algorithm, got: %v", err)
	}
}

func TestParseUnprefixedBadCharacters(t *testing.T) {
	// Right length for sha256 base-16 but not hex.
	bad := strings.Repeat("zz", 32)
	if _, err := ParseUnprefixed(bad, SHA256); err == nil {
		t.Errorf("expected error for non-hex digest text")
	}
	// Right length for sha256 base-32 but 'e' is not in the alphabet.
	bad32 := strings.Repeat("e", 52)
	if _, err := ParseUnprefixed(bad32, SHA256); err == nil {
		t.Errorf("expected error for characters outside the base-32 alphabet")
	}
}

func TestSRIForm(t *testing.T) {
	d := MustNew(SHA256, make([]byte, 32))
	sri := d.SRI()
	if !strings.HasPrefix(sri, "sha256-") {
		t.Errorf("SRI must start with 'sha256-', got %q", sri)
	}
	if sri != "sha256-"+d.Base64() {
		t.Errorf("SRI must be '<algo>-<base64>', got %q", sri)
	}
}

func TestStringForm(t *testing.T) {
	d := MustNew(SHA256, make([]byte, 32))
	if d.String() != "sha256:"+d.Base32() {
		t.Errorf("String must be '<algo>:<base32>', got %q", d.String())
	}
}
