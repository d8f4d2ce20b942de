package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/nstag"
)

func minorResult(t *testing.T) nstag.Result {
	t.Helper()

	set := nstag.Build([]string{
		"api/v1.0.0", "api/v1.1.0", "api/v1.1.1", "api/v1.1.2", "api/v1.2.0",
	}, "api")

	res, err := nstag.Resolve(set, nstag.BumpMinor)
	require.NoError(t, err)

	return res
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "TEXT": Text, "json": JSON, " yaml ": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestWrite_TextResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, minorResult(t)))
	assert.Equal(t, "api/v1.3.0\n", buf.String())
}

func TestWrite_JSONResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, minorResult(t)))

	var got struct {
		Tag      string   `json:"tag"`
		Version  string   `json:"version"`
		Kind     string   `json:"kind"`
		Current  string   `json:"current"`
		Previous *string  `json:"previous"`
		Next     string   `json:"next"`
		Hotfixes []string `json:"hotfixes"`
		Stable   bool     `json:"stable"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "api/v1.3.0", got.Tag)
	assert.Equal(t, "1.3.0", got.Version)
	assert.Equal(t, "minor", got.Kind)
	assert.Equal(t, "api/v1.2.0", got.Current)
	require.NotNil(t, got.Previous)
	assert.Equal(t, "api/v1.1.2", *got.Previous)
	assert.Equal(t, []string{"api/v1.1.1", "api/v1.1.2"}, got.Hotfixes)
	assert.True(t, got.Stable)
}

func TestWrite_JSONDecodesBack(t *testing.T) {
	in := minorResult(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, in))

	var out nstag.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWrite_YAMLRelease(t *testing.T) {
	set := nstag.Build([]string{"api/v1.0.0", "api/v1.0.1", "api/v1.1.0"}, "api")
	rel := nstag.Describe(set, nstag.MustParse("api/v1.1.0"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, rel))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "api/v1.1.0", got["tag"])
	assert.Equal(t, "v1.1.0", got["shortTag"])
	assert.Equal(t, "api/v1.0.0", got["previousTag"])
	assert.Equal(t, []any{"api/v1.0.1"}, got["hotfixes"])
	assert.Equal(t, true, got["tagPrdSemver"])
}

func TestWrite_TextRelease(t *testing.T) {
	set := nstag.Build([]string{"api/v1.0.0"}, "api")
	rel := nstag.Describe(set, nstag.MustParse("api/v1.0.0"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, rel))

	want := "tag=api/v1.0.0\n" +
		"short_tag=v1.0.0\n" +
		"kind=major\n" +
		"previous_tag=\n" +
		"hotfixes=\n" +
		"stable=true\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextLists(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, []nstag.Tag{nstag.NewTag("api", 1, 0, 0)}))
	require.NoError(t, Write(&buf, Text, []string{"api", "worker"}))
	assert.Equal(t, "api/v1.0.0\napi\nworker\n", buf.String())
}
