package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/eurlex"
)

// Options converts the flags into query builder options.
func (f *QueryFlags) Options() (eurlex.QueryOptions, error) {
	rt, err := eurlex.ParseResourceType(f.Type)
	if err != nil {
		return eurlex.QueryOptions{}, err
	}

	opts := eurlex.QueryOptions{
		ResourceType: rt,
		ManualType:   f.ManualType,
		Directory:    f.Directory,

		IncludeCorrigenda:      f.Corrigenda,
		IncludeCelex:           f.Celex,
		IncludeLegalBasis:      f.LegalBasis,
		IncludeDate:            f.Date,
		IncludeDateForce:       f.DateForce,
		IncludeDateEndValid:    f.DateEndValid,
		IncludeDateTransposed:  f.DateTransposed,
		IncludeDateLodged:      f.DateLodged,
		IncludeForce:           f.Force,
		IncludeEurovoc:         f.Eurovoc,
		IncludeAuthor:          f.Author,
		IncludeCitations:       f.Citations,
		IncludeCourtProcedure:  f.CourtProcedure,
		IncludeECLI:            f.ECLI,
		IncludeAdvocateGeneral: f.AdvocateGeneral,
		IncludeJudgeRapporteur: f.JudgeRapporteur,
		IncludeCourtFormation:  f.CourtFormation,
		IncludeScholarship:     f.Scholarship,
		IncludeProposal:        f.Proposal,
		IncludeDirectory:       f.IncludeDirectory,
		IncludeSector:          f.IncludeSector,

		Order: f.Order,
		Limit: f.Limit,
	}

	if s := strings.TrimSpace(f.Sector); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return eurlex.QueryOptions{}, eurlex.Errorf(eurlex.EINVALID, "sector code must be a digit between 0 and 9, got %q", f.Sector)
		}
		opts.Sector = &n
	}

	return opts, nil
}

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	query, err := eurlex.BuildQuery(opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, query)
	return nil
}

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	query := strings.TrimSpace(c.SPARQL)
	var rt eurlex.ResourceType
	if query == "" {
		opts, err := c.Options()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
			return err
		}
		if query, err = eurlex.BuildQuery(opts); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
			return err
		}
		rt = opts.ResourceType
	}

	rs, err := deps.Executor.Execute(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	if out := eurlex.FormatResultSet(rs); out != "" {
		fmt.Fprintln(deps.Stdout, out)
	}

	if c.NoSave || deps.Records == nil {
		return nil
	}

	rec := &eurlex.QueryRecord{
		Query:        query,
		ResourceType: rt,
		Result:       rs,
	}
	if err := deps.Records.CreateQueryRecord(deps.Ctx, rec); err != nil {
		// Results are already printed; a history failure only warns.
		deps.Logger.Warn("failed to record query", "err", err)
		return nil
	}
	fmt.Fprintf(deps.Stderr, "Saved query %s (%d rows)\n", rec.ID, rs.Len())

	return nil
}
