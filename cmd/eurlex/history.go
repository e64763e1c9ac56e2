package main

import (
	"fmt"

	"github.com/fwojciec/eurlex"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := eurlex.QueryRecordFilter{Limit: c.Limit}
	if c.Type != "" {
		rt, err := eurlex.ParseResourceType(c.Type)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
			return err
		}
		filter.ResourceType = &rt
	}

	records, err := deps.Records.FindQueryRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No queries recorded. Use 'eurlex run' to execute one.")
		return nil
	}

	for _, r := range records {
		rt := string(r.ResourceType)
		if rt == "" {
			rt = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d rows\n", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), rt, r.Result.Len())
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindQueryRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, rec.Query)
	fmt.Fprintln(deps.Stdout)
	if out := eurlex.FormatResultSet(rec.Result); out != "" {
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}

// Run executes the history rm command.
func (c *HistoryRmCmd) Run(deps *Dependencies) error {
	if err := deps.Records.DeleteQueryRecord(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted query %s\n", c.ID)
	return nil
}
