// Package fs provides file-based storage for downloaded notices.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/eurlex"
)

// Ensure NoticeWriter implements eurlex.NoticeWriter at compile time.
var _ eurlex.NoticeWriter = (*NoticeWriter)(nil)

// NoticeWriter writes notices as XML files to a directory.
type NoticeWriter struct {
	baseDir string
	append  bool
}

// Option configures a NoticeWriter.
type Option func(*NoticeWriter)

// WithAppend appends to existing files instead of truncating them.
func WithAppend() Option {
	return func(w *NoticeWriter) {
		w.append = true
	}
}

// NewNoticeWriter creates a new NoticeWriter that writes to baseDir.
func NewNoticeWriter(baseDir string, opts ...Option) *NoticeWriter {
	w := &NoticeWriter{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteNotice writes the notice body and returns the file path.
// The file is named after n.Filename, or the last segment of n.URL when
// that is empty. Names without an extension get ".xml".
func (w *NoticeWriter) WriteNotice(ctx context.Context, n *eurlex.Notice) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := noticeFilename(n)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if w.append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(fullPath, flags, 0644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(n.Body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return fullPath, nil
}

func noticeFilename(n *eurlex.Notice) (string, error) {
	name := n.Filename
	if name == "" {
		var err error
		if name, err = eurlex.NoticeFilename(n.URL); err != nil {
			return "", err
		}
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", eurlex.Errorf(eurlex.EINVALID, "notice filename %q must not contain a path", name)
	}
	if filepath.Ext(name) == "" {
		name += ".xml"
	}
	return name, nil
}
