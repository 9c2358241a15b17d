package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotator(t *testing.T, backups int, compress bool) (*Rotator, string) {
	t.Helper()
	dir := t.TempDir()
	r, err := NewRotator(dir, "test.log", 1, backups, 0, compress)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	r.maxSize = 64
	return r, dir
}

func backupNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRotator_RotatesPastMaxSize(t *testing.T) {
	r, dir := newTestRotator(t, 0, false)

	line := []byte(strings.Repeat("a", 40) + "\n")
	_, err := r.Write(line)
	require.NoError(t, err)
	_, err = r.Write(line)
	require.NoError(t, err)

	assert.Len(t, backupNames(t, dir), 1)
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, line, data)
}

func TestRotator_KeepsMaxBackups(t *testing.T) {
	r, dir := newTestRotator(t, 2, false)

	line := []byte(strings.Repeat("b", 60) + "\n")
	for range 5 {
		_, err := r.Write(line)
		require.NoError(t, err)
	}

	assert.Len(t, backupNames(t, dir), 2)
}

func TestRotator_CompressesBackups(t *testing.T) {
	r, dir := newTestRotator(t, 0, true)

	first := []byte(strings.Repeat("c", 60) + "\n")
	_, err := r.Write(first)
	require.NoError(t, err)
	_, err = r.Write([]byte("next\n"))
	require.NoError(t, err)

	names := backupNames(t, dir)
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], ".gz"))

	f, err := os.Open(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, first, data)
}

func TestRotator_ReopensAfterClose(t *testing.T) {
	r, _ := newTestRotator(t, 0, false)

	require.NoError(t, r.Close())
	_, err := r.Write([]byte("again\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "again\n", string(data))
}

func TestNewWithFile_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	logger, cleanup, err := NewWithFile(cfg, FileConfig{Enabled: true, LogDir: dir})
	require.NoError(t, err)
	logger.Debug().Str("k", "v").Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "uibridge.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
