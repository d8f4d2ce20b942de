package nstag

import (
	"math/rand"
	"strconv"
	"testing"
)

// Global sinks to avoid compiler eliminating results.
var (
	benchTags    []Tag
	benchResult  Result
	benchRelease Release
)

// makeTags generates a mixed monorepo tag listing: releases and candidates of
// several namespaces, legacy unprefixed tags, and junk. Distribution tuned for
// a busy repository.
func makeTags(n int) []string {
	r := rand.New(rand.NewSource(1)) // deterministic
	out := make([]string, n)

	namespaces := []string{"api", "web", "worker", "gateway", "billing", "auth"}

	for i := 0; i < n; i++ {
		switch x := r.Intn(100); {
		case x < 85: // namespaced X.Y.Z with optional candidate counter
			ns := namespaces[r.Intn(len(namespaces))]
			s := strconv.Itoa(r.Intn(20)) + "." + strconv.Itoa(r.Intn(30)) + "." + strconv.Itoa(r.Intn(50))

			// ~25% candidates
			if r.Intn(100) < 25 {
				s += "-" + strconv.Itoa(r.Intn(12))
			}

			// ~90% carry the "v" prefix
			if r.Intn(100) < 90 {
				s = "v" + s
			}

			out[i] = ns + "/" + s

		case x < 95: // named candidates and shorthands, not parsable
			out[i] = namespaces[r.Intn(len(namespaces))] + "/v" + strconv.Itoa(r.Intn(20)) + ".0-rc" + strconv.Itoa(r.Intn(5))

		default: // junk
			junks := []string{
				"latest", "stable", "dev", "release-2019", "nightly",
				"v1.0.0", "foo", "bar",
			}

			out[i] = junks[r.Intn(len(junks))]
		}
	}

	return out
}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	raw := makeTags(50000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTags = Build(raw, "api").Tags
	}
}

func BenchmarkResolve(b *testing.B) {
	for _, kind := range Kinds() {
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			set := Build(makeTags(50000), "api")

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := Resolve(set, kind)
				if err != nil {
					b.Fatal(err)
				}
				benchResult = res
			}
		})
	}
}

func BenchmarkDescribe(b *testing.B) {
	b.ReportAllocs()
	set := Build(makeTags(50000), "api")
	tag := MustParse("api/v10.10.0")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRelease = Describe(set, tag)
	}
}

func BenchmarkHistory_DepthMinor(b *testing.B) {
	b.ReportAllocs()
	set := Build(makeTags(50000), "api")

	opt := DefaultOptions()
	opt.Depth = DepthMinor

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTags = History(set, opt)
	}
}

func BenchmarkHistory_WithRange(b *testing.B) {
	b.ReportAllocs()
	set := Build(makeTags(50000), "api")

	opt := Options{
		Depth: DepthPatch,
		Sort:  SortDesc,
		Range: Range{
			Min:               "1",
			IncludePreRelease: true, // >= 1.0.0-0
			Max:               "10.5",
			MaxExclusive:      true, // < 10.5.0-0
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchTags = History(set, opt)
	}
}

func BenchmarkSortTags_Desc(b *testing.B) {
	b.ReportAllocs()
	tags := Build(makeTags(20000), "web").Tags

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// SortTags sorts a copy, so no need to clone here.
		benchTags = SortTags(tags, SortDesc)
	}
}
