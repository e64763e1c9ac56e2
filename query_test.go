package eurlex_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/eurlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestBuildQuery_ResourceTypes(t *testing.T) {
	t.Parallel()

	for _, rt := range eurlex.ResourceTypes() {
		t.Run(string(rt), func(t *testing.T) {
			t.Parallel()

			opts := eurlex.NewQueryOptions(rt)
			if rt == eurlex.ResourceManual {
				opts.ManualType = "SWD"
			}

			q, err := eurlex.BuildQuery(opts)

			require.NoError(t, err)
			assert.Contains(t, q, "PREFIX cdm:")
			assert.NotContains(t, q, "\n")

			codes := rt.TypeCodes()
			switch rt {
			case eurlex.ResourceAny:
				assert.Empty(t, codes)
				assert.NotContains(t, q, "FILTER(?type=")
				assert.NotContains(t, q, "cdm:work_has_resource-type ?type")
			case eurlex.ResourceManual:
				assert.Contains(t, q, "?type=<"+eurlex.ResourceTypeURI("SWD")+">")
			default:
				require.NotEmpty(t, codes)
				for _, code := range codes {
					assert.Contains(t, q, "?type=<"+eurlex.ResourceTypeURI(code)+">")
				}
			}
		})
	}
}

func TestBuildQuery_FamilyCodes(t *testing.T) {
	t.Parallel()

	t.Run("regulation contains regulation codes", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceRegulation))

		require.NoError(t, err)
		assert.Contains(t, q, "resource-type/REG>")
		assert.Contains(t, q, "resource-type/REG_IMPL>")
		assert.NotContains(t, q, "resource-type/DIR>")
	})

	t.Run("national implementation contains its code", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceNationalImplementation))

		require.NoError(t, err)
		assert.Contains(t, q, "FILTER(?type=<"+eurlex.ResourceTypeURI("MEAS_NATION_IMPL")+">)")
	})

	t.Run("decision filter has balanced parentheses", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.NewQuery(eurlex.NewQueryOptions(eurlex.ResourceDecision))
		require.NoError(t, err)

		var filter string
		for _, p := range q.Patterns {
			if strings.HasPrefix(p, "FILTER(?type=") {
				filter = p
			}
		}
		require.NotEmpty(t, filter)
		assert.Equal(t, strings.Count(filter, "("), strings.Count(filter, ")"))
		assert.Contains(t, filter, "JOINT_DEC>")
	})
}

func TestBuildQuery_InvalidResourceType(t *testing.T) {
	t.Parallel()

	_, err := eurlex.BuildQuery(eurlex.NewQueryOptions("statute"))

	require.Error(t, err)
	assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err))
	assert.Contains(t, eurlex.ErrorMessage(err), "valid options are")
}

func TestBuildQuery_ManualType(t *testing.T) {
	t.Parallel()

	t.Run("fails without manual type", func(t *testing.T) {
		t.Parallel()

		_, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceManual))

		require.Error(t, err)
		assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err))
	})

	t.Run("fails with two-character manual type", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceManual)
		opts.ManualType = "SW"

		_, err := eurlex.BuildQuery(opts)

		assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err))
	})

	t.Run("fails with characters that would break the IRI", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceManual)
		opts.ManualType = "SWD> ?x"

		_, err := eurlex.BuildQuery(opts)

		assert.Equal(t, eurlex.EINVALID, eurlex.ErrorCode(err))
	})

	t.Run("embeds three-character manual type", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceManual)
		opts.ManualType = "SWD"

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.Contains(t, q, "FILTER(?type=<http://publications.europa.eu/resource/authority/resource-type/SWD>)")
	})
}

func TestBuildQuery_IncompatibleOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts eurlex.QueryOptions
		code string
	}{
		{
			name: "court procedure with caselaw",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceCaselaw, IncludeCourtProcedure: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "court procedure with any",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceAny, IncludeCourtProcedure: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "court procedure with manual",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceManual, ManualType: "SWD", IncludeCourtProcedure: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "court procedure with directive",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceDirective, IncludeCourtProcedure: true},
		},
		{
			name: "transposition date with regulation",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceRegulation, IncludeDateTransposed: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "transposition date with directive",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceDirective, IncludeDateTransposed: true},
		},
		{
			name: "legal basis with caselaw",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceCaselaw, IncludeLegalBasis: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "force with caselaw",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceCaselaw, IncludeForce: true},
			code: eurlex.ECONFLICT,
		},
		{
			name: "legal basis and force with regulation",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceRegulation, IncludeLegalBasis: true, IncludeForce: true},
		},
		{
			name: "sector out of range",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceRegulation, Sector: intPtr(10)},
			code: eurlex.EINVALID,
		},
		{
			name: "negative sector",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceRegulation, Sector: intPtr(-1)},
			code: eurlex.EINVALID,
		},
		{
			name: "negative limit",
			opts: eurlex.QueryOptions{ResourceType: eurlex.ResourceRegulation, Limit: -5},
			code: eurlex.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := eurlex.BuildQuery(tt.opts)

			if tt.code == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, eurlex.ErrorCode(err))
		})
	}
}

func TestBuildQuery_Idempotent(t *testing.T) {
	t.Parallel()

	opts := eurlex.NewQueryOptions(eurlex.ResourceDirective)
	opts.IncludeDate = true
	opts.IncludeEurovoc = true
	opts.IncludeLegalBasis = true
	opts.Directory = "1520"
	opts.Sector = intPtr(3)
	opts.Order = true
	opts.Limit = 10

	first, err := eurlex.BuildQuery(opts)
	require.NoError(t, err)
	second, err := eurlex.BuildQuery(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildQuery_Projection(t *testing.T) {
	t.Parallel()

	t.Run("celex is projected by default", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.NewQuery(eurlex.NewQueryOptions(eurlex.ResourceRegulation))

		require.NoError(t, err)
		assert.Equal(t, []string{"?work", "?type", "?celex"}, q.Variables)
		assert.Contains(t, q.Patterns, "OPTIONAL{?work cdm:resource_legal_id_celex ?celex.}")
	})

	t.Run("variables follow fixed order", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.QueryOptions{
			ResourceType:           eurlex.ResourceDirective,
			IncludeProposal:        true,
			IncludeCelex:           true,
			IncludeSector:          true,
			IncludeDate:            true,
			IncludeLegalBasis:      true,
			IncludeDateTransposed:  true,
			IncludeAdvocateGeneral: true,
			IncludeECLI:            true,
		}

		q, err := eurlex.NewQuery(opts)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"?work", "?type", "?celex", "str(?date)", "str(?datetranspos)",
			"?lbs", "?lbcelex", "?lbsuffix", "?ecli", "?sector", "?ag", "?proposal",
		}, q.Variables)
	})

	t.Run("label clauses filter to English", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceRegulation)
		opts.IncludeAuthor = true
		opts.IncludeEurovoc = true

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.Contains(t, q, "FILTER(lang(?author)='en')")
		assert.Contains(t, q, `filter (lang(?subjectLabel)="en")`)
	})
}

func TestBuildQuery_Filters(t *testing.T) {
	t.Parallel()

	t.Run("excludes corrigenda by default", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceRegulation))

		require.NoError(t, err)
		assert.Contains(t, q, "resource-type/CORRIGENDUM>")
	})

	t.Run("keeps corrigenda when included", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceRegulation)
		opts.IncludeCorrigenda = true

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.NotContains(t, q, "CORRIGENDUM")
	})

	t.Run("never excludes corrigenda for caselaw", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceCaselaw))

		require.NoError(t, err)
		assert.NotContains(t, q, "CORRIGENDUM")
	})

	t.Run("directory matches exact and narrower codes", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceRegulation)
		opts.Directory = "1520"

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.Contains(t, q, "<http://publications.europa.eu/resource/authority/fd_555/1520>")
		assert.Contains(t, q, "<http://publications.europa.eu/resource/authority/dir-eu-legal-act/1520>")
		assert.Contains(t, q, "?value skos:narrower+ ?directory.")
		assert.Contains(t, q, "UNION")
	})

	t.Run("sector renders as string filter", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceRegulation)
		opts.Sector = intPtr(0)

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.Contains(t, q, "FILTER(str(?sector)='0')")
	})

	t.Run("always filters latest version", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceAny))

		require.NoError(t, err)
		assert.Contains(t, q, `cdm:do_not_index "true"^^<http://www.w3.org/2001/XMLSchema#boolean>`)
	})
}

func TestBuildQuery_Ending(t *testing.T) {
	t.Parallel()

	t.Run("plain closing brace without order or limit", func(t *testing.T) {
		t.Parallel()

		q, err := eurlex.BuildQuery(eurlex.NewQueryOptions(eurlex.ResourceCaselaw))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(q, "}"))
	})

	t.Run("order and limit", func(t *testing.T) {
		t.Parallel()

		opts := eurlex.NewQueryOptions(eurlex.ResourceCaselaw)
		opts.Order = true
		opts.Limit = 10

		q, err := eurlex.BuildQuery(opts)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(q, "} order by str(?date) limit 10"))
	})
}
