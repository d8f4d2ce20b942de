package nstag

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestBuild_NamespaceIsolation(t *testing.T) {
	t.Parallel()

	raw := []string{
		"api/v1.0.0",
		"web/v5.0.0",
		"API/v9.0.0", // case-sensitive
		" api/v1.1.0 ",
		"",
		"api-gw/v7.0.0", // prefix of another namespace
		"release-2019",
		"api/v1.1.0-rc1",
		"api/1.2.0",
	}

	set := Build(raw, "api")

	if set.Namespace != "api" {
		t.Fatalf("Namespace = %q", set.Namespace)
	}

	got := names(set.Tags)
	want := []string{"api/v1.0.0", "api/v1.1.0", "api/v1.2.0"} // input order, not sorted
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build got %v; want %v", got, want)
	}

	if set.Len() != 3 {
		t.Fatalf("Len() = %d", set.Len())
	}
}

func TestBuild_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	set := Build([]string{"a/v3.0.0", "a/v1.0.0", "a/v2.0.0"}, "a")

	got := names(set.Tags)
	want := []string{"a/v3.0.0", "a/v1.0.0", "a/v2.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build got %v; want %v", got, want)
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	for _, raw := range [][]string{nil, {}, {"junk", "other/v1.0.0"}} {
		set := Build(raw, "api")
		if set.Len() != 0 || set.Namespace != "api" {
			t.Fatalf("Build(%v) = %#v; want empty api set", raw, set)
		}
	}
}

func TestBuild_LogsSkippedTags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Build([]string{"api/v1.0.0", "nope"}, "api", WithLogger(log))

	out := buf.String()
	if !strings.Contains(out, "skip tag") || !strings.Contains(out, "tag=nope") {
		t.Fatalf("debug log must report the skipped tag:\n%s", out)
	}

	if !strings.Contains(out, "skipped=1") {
		t.Fatalf("debug log must count skipped tags:\n%s", out)
	}
}

func TestTagSetContains(t *testing.T) {
	t.Parallel()

	set := Build([]string{"api/1.0.0", "api/v1.1.0-2"}, "api")

	if !set.Contains(MustParse("api/v1.0.0")) {
		t.Fatal("Contains must match across the optional prefix")
	}

	if !set.Contains(MustParse("api/v1.1.0-2")) {
		t.Fatal("Contains must match candidates")
	}

	if set.Contains(MustParse("api/v1.1.0")) || set.Contains(MustParse("api/v1.1.0-1")) {
		t.Fatal("Contains matched a missing version")
	}
}

func TestNamespaces(t *testing.T) {
	t.Parallel()

	raw := []string{"web/v1.0.0", "api/v1.0.0", "junk", "web/v2.0.0", " db/1.0.0 ", "api/v1.0.0-rc1"}

	got := Namespaces(raw)
	want := []string{"api", "db", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Namespaces got %v; want %v", got, want)
	}

	if got := Namespaces(nil); len(got) != 0 {
		t.Fatalf("Namespaces(nil) = %v", got)
	}
}
