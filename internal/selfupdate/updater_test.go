package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// releaseFixture serves a fake GitHub release: latest-tag endpoint plus the
// archive and checksums assets for v2.0.0.
type releaseFixture struct {
	archive   []byte
	checksums string
}

func (f releaseFixture) server() *httptest.Server {
	const asset = "learninghub_Darwin_all.tar.gz"
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/mviorel/learninghub/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/mviorel/learninghub/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(f.archive)
		case "/mviorel/learninghub/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(f.checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "amd64", "learninghub_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "learninghub_Darwin_all.tar.gz", false},
		{"linux", "amd64", "learninghub_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "learninghub_Linux_arm64.tar.gz", false},
		{"linux", "386", "learninghub_Linux_i386.tar.gz", false},
		{"windows", "amd64", "learninghub_Windows_x86_64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksumsSkipsMalformedLines(t *testing.T) {
	manifest := "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"
	got := parseChecksums([]byte(manifest))
	assert.Equal(t, map[string]string{
		"file.tar.gz":  "abc123",
		"other.tar.gz": "ghi789",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinaryFromTarGz(t *testing.T) {
	content := []byte("#!/bin/sh\necho learninghub")

	got, err := extractBinary(buildTarGz(t, "learninghub", content), "learninghub_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = extractBinary(buildTarGz(t, "other-file", content), "learninghub_Darwin_all.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyUpdatePreservesMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "learninghub")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestUpdateReplacesBinary(t *testing.T) {
	content := []byte("new-learninghub-binary")
	archive := buildTarGz(t, "learninghub", content)
	sum := sha256.Sum256(archive)

	fx := releaseFixture{
		archive:   archive,
		checksums: fmt.Sprintf("%s  learninghub_Darwin_all.tar.gz\n", hex.EncodeToString(sum[:])),
	}
	server := fx.server()
	defer server.Close()

	execPath := filepath.Join(t.TempDir(), "learninghub")
	require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

	checker := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
		withExecPath(func() (string, error) { return execPath, nil }),
	)

	var stages []string
	err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
}

func TestUpdateRefusesDevBuild(t *testing.T) {
	err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateAlreadyLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
	}))
	defer server.Close()

	err := NewChecker(WithBaseURL(server.URL)).
		Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdateRejectsBadChecksum(t *testing.T) {
	archive := buildTarGz(t, "learninghub", []byte("payload"))
	fx := releaseFixture{
		archive:   archive,
		checksums: "0000000000000000000000000000000000000000000000000000000000000000  learninghub_Darwin_all.tar.gz\n",
	}
	server := fx.server()
	defer server.Close()

	err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
		Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUpdateReportsDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/mviorel/learninghub/releases/latest" {
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
		Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download archive")
}

// buildTarGz packs a single file into a tar.gz archive.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0o755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
