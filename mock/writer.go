package mock

import (
	"context"

	"github.com/fwojciec/eurlex"
)

var _ eurlex.NoticeWriter = (*NoticeWriter)(nil)

// NoticeWriter is a mock implementation of eurlex.NoticeWriter.
type NoticeWriter struct {
	WriteNoticeFn func(ctx context.Context, n *eurlex.Notice) (string, error)
}

func (w *NoticeWriter) WriteNotice(ctx context.Context, n *eurlex.Notice) (string, error) {
	return w.WriteNoticeFn(ctx, n)
}
