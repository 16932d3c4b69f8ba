package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

const abcDigest = "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"b3hash"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestHashDefaultCommand(t *testing.T) {
	out, _, err := runApp(t, "", "abc")
	require.NoError(t, err)
	assert.Equal(t, abcDigest+"\n", out)

	out, _, err = runApp(t, "", "hash", "abc")
	require.NoError(t, err)
	assert.Equal(t, abcDigest+"\n", out)
}

func TestHashStdin(t *testing.T) {
	out, _, err := runApp(t, "abc")
	require.NoError(t, err)
	assert.Equal(t, abcDigest+"\n", out)

	out, _, err = runApp(t, "", "-")
	require.NoError(t, err)
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262\n", out)
}

func TestHashOptions(t *testing.T) {
	key := strings.Repeat("k", blake3hash.KeySize)
	want, err := blake3hash.Hash([]byte("hello"), blake3hash.WithKey([]byte(key)), blake3hash.WithOutputLength(64), blake3hash.WithRawOutput(true))
	require.NoError(t, err)

	out, _, err := runApp(t, "", "--raw", "-l", "64", "--key", key, "hello")
	require.NoError(t, err)
	assert.Equal(t, want.String(), out)

	out, _, err = runApp(t, "", "hash", "--key-hex", hex.EncodeToString([]byte(key)), "--length", "64", "--hex-input", hex.EncodeToString([]byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(want.Bytes())+"\n", out)

	out, _, err = runApp(t, "", "--backend", "lukechampine", "-f", "digest", "abc")
	require.NoError(t, err)
	assert.Equal(t, "blake3:"+abcDigest+"\n", out)
}

func TestHashInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero length", []string{"-l", "0", "abc"}, blake3hash.ErrInvalidOutputLength},
		{"too long", []string{"-l", "65537", "abc"}, blake3hash.ErrInvalidOutputLength},
		{"short key", []string{"-k", "short", "abc"}, blake3hash.ErrInvalidKeyLength},
		{"both keys", []string{"-k", "a", "--key-hex", "61", "abc"}, errUsage},
		{"bad format", []string{"-f", "base64", "abc"}, errUsage},
		{"bad backend", []string{"-b", "sha256", "abc"}, errUsage},
		{"extra args", []string{"a", "b"}, errUsage},
		{"length overflow", []string{"-l", "99999999999999999999999", "abc"}, errUsage},
		{"unknown flag", []string{"hash", "--no-such-flag", "abc"}, errUsage},
		{"raw with format", []string{"--raw", "-f", "digest", "abc"}, errUsage},
		{"raw with format after hash", []string{"--raw", "hash", "-f", "multihash", "abc"}, errUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, 2, exitCode(err))
			assert.Empty(t, out)
		})
	}
}

func TestHashFlagsBeforeCommand(t *testing.T) {
	key := strings.Repeat("k", blake3hash.KeySize)
	keyed, err := blake3hash.Hash([]byte("abc"), blake3hash.WithKey([]byte(key)))
	require.NoError(t, err)
	long, err := blake3hash.Hash([]byte("abc"), blake3hash.WithOutputLength(64))
	require.NoError(t, err)
	raw, err := blake3hash.Hash([]byte("abc"), blake3hash.WithRawOutput(true))
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"key", []string{"--key", key, "hash", "abc"}, keyed.String() + "\n"},
		{"key hex", []string{"--key-hex", hex.EncodeToString([]byte(key)), "hash", "abc"}, keyed.String() + "\n"},
		{"length", []string{"-l", "64", "hash", "abc"}, long.String() + "\n"},
		{"raw", []string{"--raw", "hash", "abc"}, raw.String()},
		{"format", []string{"-f", "digest", "hash", "abc"}, "blake3:" + abcDigest + "\n"},
		{"hex input", []string{"--hex-input", "hash", "616263"}, abcDigest + "\n"},
		{"backend", []string{"-b", "lukechampine", "hash", "abc"}, abcDigest + "\n"},
		{"command flag wins", []string{"-l", "16", "hash", "-l", "64", "abc"}, long.String() + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runApp(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHashEnvironment(t *testing.T) {
	t.Setenv("B3HASH_LENGTH", "16")

	out, _, err := runApp(t, "", "hash", "abc")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 32)

	out, _, err = runApp(t, "", "hash", "-l", "32", "abc")
	require.NoError(t, err)
	assert.Equal(t, abcDigest+"\n", out)
}

func TestStatHexInputBeforeCommand(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	out, _, err := runApp(t, "", "--hex-input", "stat", "--registry", u.Host, "--repository", "test/repo", "--plain-http", "616263")
	require.NoError(t, err)
	assert.Equal(t, "blake3:"+abcDigest+"\tnot found\n", out)
	assert.Equal(t, "/v2/test/repo/blobs/blake3:"+abcDigest, requested)
}

func TestEmptyKeyIsUnkeyed(t *testing.T) {
	out, _, err := runApp(t, "", "--key", "", "abc")
	require.NoError(t, err)
	assert.Equal(t, abcDigest+"\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("network down")))
}

func TestInfo(t *testing.T) {
	out, _, err := runApp(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "BLAKE3 support")
	assert.Contains(t, out, "zeebo")
	assert.Contains(t, out, "1-65536 bytes")
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	_, _, err := runApp(t, "", "check", "-o", path)
	require.NoError(t, err)

	report, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(report), "## Summary")
	assert.NotContains(t, string(report), "❌")
}

func TestHashDebugLogging(t *testing.T) {
	_, stderr, err := runApp(t, "", "--debug", "abc")
	require.NoError(t, err)
	assert.Contains(t, stderr, "hashing message")
	assert.Contains(t, stderr, "length=32")
	assert.Contains(t, stderr, "keyed=false")
}
