package nstag

import "testing"

func TestValidNamespace(t *testing.T) {
	t.Parallel()

	ok := []string{"api", "web-app", "svc_2", "A", "0"}
	bad := []string{
		"",          // empty
		"api/v1",    // slash
		"api ",      // space
		"web.app",   // dot
		"ünicode",   // non-ascii
		"refs/tags", // nested
	}

	for _, s := range ok {
		if !ValidNamespace(s) {
			t.Fatalf("want true for %q", s)
		}
	}

	for _, s := range bad {
		if ValidNamespace(s) {
			t.Fatalf("want false for %q", s)
		}
	}
}

func TestRefVersionRe(t *testing.T) {
	t.Parallel()

	ok := []string{"v1.2.3", "v0.0.0", "v10.20.30-4", "v01.2.3"}
	bad := []string{
		"1.2.3",       // prefix is mandatory in refs
		"v1.2",        // shorthand
		"v1.2.3-rc1",  // named candidate
		"v1.2.3+b1",   // build
		"v1.2.3-",     // empty counter
		"V1.2.3",      // upper case
		"v1.2.3/more", // trailing path
	}

	for _, s := range ok {
		if !refVersionRe.MatchString(s) {
			t.Fatalf("want match for %q", s)
		}
	}

	for _, s := range bad {
		if refVersionRe.MatchString(s) {
			t.Fatalf("want no match for %q", s)
		}
	}
}
