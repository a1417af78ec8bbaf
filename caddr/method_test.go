package caddr

import "testing"

func TestIngestionPrefixCanonical(t *testing.T) {
	if got := IngestionPrefix(Flat); got != "" {
		t.Errorf("IngestionPrefix(Flat) = %q, want empty", got)
	}
	if got := IngestionPrefix(Recursive); got != "r:" {
		t.Errorf("IngestionPrefix(Recursive) = %q, want \"r:\"", got)
	}
}

func TestIngestionPrefixPanicsOutsideClosedSet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for an ingestion method outside the closed set")
		}
	}()
	IngestionPrefix(IngestionMethod(42))
}

func TestMethodPrefix(t *testing.T) {
	cases := []struct {
		m    Method
		want string
	}{
		{TextMethod{}, "text:"},
		{FileMethod{Ingestion: Flat}, ""},
		{FileMethod{Ingestion: Recursive}, "r:"},
	}
	for _, c := range cases {
		if got := MethodPrefix(c.m); got != c.want {
			t.Errorf("MethodPrefix(%#v) = %q, want %q", c.m, got, c.want)
		}
	}
}

func TestParseMethodPrefix(t *testing.T) {
	cases := []struct {
		in       string
		want     Method
		wantRest string
	}{
		{"r:sha256", FileMethod{Ingestion: Recursive}, "sha256"},
		{"text:sha256", TextMethod{}, "sha256"},
		// No recognized token: nothing consumed, flat file ingestion
		// assumed. Intentionally permissive.
		{"sha256", FileMethod{Ingestion: Flat}, "sha256"},
		{"", FileMethod{Ingestion: Flat}, ""},
	}
	for _, c := range cases {
		got, rest := ParseMethodPrefix(c.in)
		if got != c.want || rest != c.wantRest {
			t.Errorf("ParseMethodPrefix(%q) = (%#v, %q), want (%#v, %q)",
				c.in, got, rest, c.want, c.wantRest)
		}
	}
}
