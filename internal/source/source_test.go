package source

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	src := Static{"api/v1.0.0", "worker/v1.0.0"}

	got, err := src.Tags(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"api/v1.0.0", "worker/v1.0.0"}, got)

	got[0] = "mutated"
	assert.Equal(t, "api/v1.0.0", src[0], "Tags must return a copy")
}

func TestStatic_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Static{"a/v1.0.0"}.Tags(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReader_SkipsBlankLines(t *testing.T) {
	in := strings.NewReader("api/v1.0.0\n\n  api/v1.1.0  \r\n\t\nworker/v2.0.0")

	got, err := Reader{R: in}.Tags(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"api/v1.0.0", "api/v1.1.0", "worker/v2.0.0"}, got)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.txt")
	require.NoError(t, os.WriteFile(path, []byte("api/v1.0.0\napi/v1.0.1\n"), 0o600))

	got, err := File{Path: path}.Tags(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"api/v1.0.0", "api/v1.0.1"}, got)

	_, err = File{Path: filepath.Join(t.TempDir(), "missing")}.Tags(context.Background(), "")
	assert.Error(t, err)
}

func TestNamespacePattern(t *testing.T) {
	assert.Equal(t, "api/*", NamespacePattern("api"))
	assert.Equal(t, "", NamespacePattern(""))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\n\nb\n"))
	assert.Empty(t, splitLines(""))
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1",
	)

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func TestGit_Tags(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init", "-q")
	runGit(t, dir, "commit", "-q", "--allow-empty", "-m", "init")

	for _, tag := range []string{"api/v1.0.0", "api/1.1.0", "worker/v0.1.0"} {
		runGit(t, dir, "tag", tag)
	}

	src := Git{Dir: dir}

	got, err := src.Tags(context.Background(), NamespacePattern("api"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"api/v1.0.0", "api/1.1.0"}, got)

	all, err := src.Tags(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGit_NotARepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	_, err := Git{Dir: t.TempDir()}.Tags(context.Background(), "")
	assert.Error(t, err)
}
