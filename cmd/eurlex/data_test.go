package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/eurlex"
	main "github.com/fwojciec/eurlex/cmd/eurlex"
	"github.com/fwojciec/eurlex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints document text", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Documents = &mock.DocumentService{
			FetchTextFn: func(_ context.Context, ref string, opts eurlex.TextOptions) (*eurlex.ExtractionResult, error) {
				assert.Equal(t, "32016R0679", ref)
				assert.Equal(t, []string{"de"}, opts.Languages)
				assert.True(t, opts.IncludeBreaks)
				return &eurlex.ExtractionResult{Text: "Artikel 1", Parts: []string{"Artikel 1"}}, nil
			},
		}

		cmd := &main.DataCmd{Ref: "32016R0679", Type: "text", Lang: []string{"de"}, Breaks: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Artikel 1\n", stdout.String())
	})

	t.Run("prints title", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Documents = &mock.DocumentService{
			FetchTitleFn: func(_ context.Context, _ string, _ []string) (string, error) {
				return "Regulation (EU) 2016/679", nil
			},
		}

		cmd := &main.DataCmd{Ref: "32016R0679", Type: "title"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Regulation (EU) 2016/679\n", stdout.String())
	})

	t.Run("splits case-law title into metadata", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Documents = &mock.DocumentService{
			FetchTitleFn: func(_ context.Context, _ string, _ []string) (string, error) {
				return "Judgment of the Court of 6 October 2015.#Maximillian Schrems v Data Protection Commissioner.#Case C-362/14.", nil
			},
		}

		cmd := &main.DataCmd{Ref: "62014CJ0362", Type: "title", CaselawMetadata: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t,
			"title\tJudgment of the Court of 6 October 2015.\n"+
				"parties\tMaximillian Schrems v Data Protection Commissioner\n"+
				"case_number\tCase C-362/14\n",
			stdout.String())
	})

	t.Run("prints one identifier per line", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := newDeps(stdout, &bytes.Buffer{})
		deps.Documents = &mock.DocumentService{
			FetchIdentifiersFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"32016R0679", "3e485e15-11bd-11e6-ba9a-01aa75ed71a1"}, nil
			},
		}

		cmd := &main.DataCmd{Ref: "32016R0679", Type: "ids"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "32016R0679\n3e485e15-11bd-11e6-ba9a-01aa75ed71a1\n", stdout.String())
	})

	t.Run("reports retrieval errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Documents = &mock.DocumentService{
			FetchTextFn: func(_ context.Context, _ string, _ eurlex.TextOptions) (*eurlex.ExtractionResult, error) {
				return nil, eurlex.Errorf(eurlex.ERETRIEVAL, "GET returned HTTP 500")
			},
		}

		cmd := &main.DataCmd{Ref: "32016R0679", Type: "text"}

		err := cmd.Run(deps)

		assert.Equal(t, eurlex.ERETRIEVAL, eurlex.ErrorCode(err))
		assert.Equal(t, "error: GET returned HTTP 500\n", stderr.String())
		assert.Empty(t, stdout.String())
	})
}
