package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/eurlex"
	"github.com/fwojciec/eurlex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeWriter_WriteNotice(t *testing.T) {
	t.Parallel()

	t.Run("names file after final URL segment", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewNoticeWriter(dir)

		path, err := w.WriteNotice(context.Background(), &eurlex.Notice{
			URL:  "http://publications.europa.eu/resource/cellar/3e485e15-11bd-11e6-ba9a-01aa75ed71a1.0001.03/DOC_1",
			Body: []byte("<NOTICE/>"),
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "DOC_1.xml"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<NOTICE/>", string(content))
	})

	t.Run("uses explicit filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewNoticeWriter(dir)

		path, err := w.WriteNotice(context.Background(), &eurlex.Notice{
			URL:      "http://example.com/resource/celex/32016R0679",
			Filename: "test.xml",
			Body:     []byte("<NOTICE/>"),
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "test.xml"), path)
	})

	t.Run("truncates existing file by default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewNoticeWriter(dir)
		n := &eurlex.Notice{Filename: "n.xml", Body: []byte("first")}

		_, err := w.WriteNotice(context.Background(), n)
		require.NoError(t, err)
		n.Body = []byte("second")
		path, err := w.WriteNotice(context.Background(), n)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("appends when configured", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewNoticeWriter(dir, fs.WithAppend())
		n := &eurlex.Notice{Filename: "n.xml", Body: []byte("first")}

		_, err := w.WriteNotice(context.Background(), n)
		require.NoError(t, err)
		n.Body = []byte("second")
		path, err := w.WriteNotice(context.Background(), n)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "firstsecond", string(content))
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "notices", "2016")
		w := fs.NewNoticeWriter(dir)

		path, err := w.WriteNotice(context.Background(), &eurlex.Notice{Filename: "n.xml", Body: []byte("x")})

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("rejects filename with path", func(t *testing.T) {
		t.Parallel()

		w := fs.NewNoticeWriter(t.TempDir())

		_, err := w.WriteNotice(context.Background(), &eurlex.Notice{Filename: "../escape.xml", Body: []byte("x")})

		assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err))
	})

	t.Run("rejects dot filenames", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewNoticeWriter(dir)

		for _, name := range []string{".", ".."} {
			_, err := w.WriteNotice(context.Background(), &eurlex.Notice{Filename: name, Body: []byte("x")})
			assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err), name)
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := fs.NewNoticeWriter(t.TempDir())

		_, err := w.WriteNotice(ctx, &eurlex.Notice{Filename: "n.xml"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
