//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/eurlex"
	"github.com/fwojciec/eurlex/etree"
	"github.com/fwojciec/eurlex/goquery"
	eurlexhttp "github.com/fwojciec/eurlex/http"
	"github.com/fwojciec/eurlex/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Integration_Directives(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := eurlex.NewQueryOptions(eurlex.ResourceDirective)
	opts.IncludeDate = true
	opts.Limit = 5
	query, err := eurlex.BuildQuery(opts)
	require.NoError(t, err)

	rs, err := eurlexhttp.NewExecutor().Execute(ctx, query)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(rs.Columns), 3)
	assert.Equal(t, []string{"work", "type", "celex"}, rs.Columns[:3])
	assert.LessOrEqual(t, rs.Len(), 5)
	for _, celex := range rs.Values("celex") {
		t.Logf("  - %s", celex)
	}
}

func TestDocumentService_Integration_GDPR(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	svc := eurlexhttp.NewDocumentService(eurlexhttp.WithRateLimit(2))
	svc.HTML = goquery.NewTextExtractor()
	svc.PDF = pdf.NewTextExtractor()
	svc.Links = goquery.NewLinkExtractor()
	svc.Notices = etree.NewNoticeParser()

	title, err := svc.FetchTitle(ctx, "32016R0679", []string{"en"})
	require.NoError(t, err)
	assert.Contains(t, title, "2016/679")

	ids, err := svc.FetchIdentifiers(ctx, "32016R0679")
	require.NoError(t, err)
	assert.Contains(t, ids, "32016R0679")

	res, err := svc.FetchText(ctx, "32016R0679", eurlex.TextOptions{Languages: []string{"en"}})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Article 1")
	t.Logf("Fetched %d bytes in %d part(s)", len(res.Text), len(res.Parts))
}
