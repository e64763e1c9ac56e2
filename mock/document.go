package mock

import (
	"context"

	"github.com/fwojciec/eurlex"
)

var _ eurlex.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of eurlex.DocumentService.
type DocumentService struct {
	FetchNoticeFn      func(ctx context.Context, ref string, kind eurlex.NoticeKind, langs []string) (*eurlex.Notice, error)
	FetchTitleFn       func(ctx context.Context, ref string, langs []string) (string, error)
	FetchIdentifiersFn func(ctx context.Context, ref string) ([]string, error)
	FetchTextFn        func(ctx context.Context, ref string, opts eurlex.TextOptions) (*eurlex.ExtractionResult, error)
}

func (s *DocumentService) FetchNotice(ctx context.Context, ref string, kind eurlex.NoticeKind, langs []string) (*eurlex.Notice, error) {
	return s.FetchNoticeFn(ctx, ref, kind, langs)
}

func (s *DocumentService) FetchTitle(ctx context.Context, ref string, langs []string) (string, error) {
	return s.FetchTitleFn(ctx, ref, langs)
}

func (s *DocumentService) FetchIdentifiers(ctx context.Context, ref string) ([]string, error) {
	return s.FetchIdentifiersFn(ctx, ref)
}

func (s *DocumentService) FetchText(ctx context.Context, ref string, opts eurlex.TextOptions) (*eurlex.ExtractionResult, error) {
	return s.FetchTextFn(ctx, ref, opts)
}
