package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/eurlex"
)

// Ensure LoggingDocumentService implements eurlex.DocumentService.
var _ eurlex.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   eurlex.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next eurlex.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// FetchNotice delegates to the wrapped service and logs the download.
func (s *LoggingDocumentService) FetchNotice(ctx context.Context, ref string, kind eurlex.NoticeKind, langs []string) (n *eurlex.Notice, err error) {
	if !kind.LanguageNeutral() {
		s.warnLanguages(ref, langs)
	}
	defer func(begin time.Time) {
		var url string
		var size int
		if n != nil {
			url, size = n.URL, len(n.Body)
		}
		s.logger.Info("fetch notice",
			"ref", ref,
			"kind", kind,
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchNotice(ctx, ref, kind, langs)
}

// FetchTitle delegates to the wrapped service and logs the lookup.
func (s *LoggingDocumentService) FetchTitle(ctx context.Context, ref string, langs []string) (title string, err error) {
	s.warnLanguages(ref, langs)
	defer func(begin time.Time) {
		s.logger.Info("fetch title",
			"ref", ref,
			"found", err == nil && title != eurlex.NotFound,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchTitle(ctx, ref, langs)
}

// FetchIdentifiers delegates to the wrapped service and logs the lookup.
func (s *LoggingDocumentService) FetchIdentifiers(ctx context.Context, ref string) (ids []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch identifiers",
			"ref", ref,
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchIdentifiers(ctx, ref)
}

// FetchText delegates to the wrapped service and logs the text size and
// number of constituent documents.
func (s *LoggingDocumentService) FetchText(ctx context.Context, ref string, opts eurlex.TextOptions) (res *eurlex.ExtractionResult, err error) {
	s.warnLanguages(ref, opts.Languages)
	defer func(begin time.Time) {
		var size, parts int
		if res != nil {
			size, parts = len(res.Text), len(res.Parts)
		}
		s.logger.Info("fetch text",
			"ref", ref,
			"bytes", size,
			"parts", parts,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchText(ctx, ref, opts)
}

// warnLanguages reports languages that content negotiation will ignore.
func (s *LoggingDocumentService) warnLanguages(ref string, langs []string) {
	if len(langs) > eurlex.MaxLanguages {
		s.logger.Warn("ignoring extra languages",
			"ref", ref,
			"max", eurlex.MaxLanguages,
			"ignored", langs[eurlex.MaxLanguages:],
		)
	}
}
