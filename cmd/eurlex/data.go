package main

import (
	"fmt"

	"github.com/fwojciec/eurlex"
)

// Run executes the data command.
func (c *DataCmd) Run(deps *Dependencies) error {
	var err error
	switch c.Type {
	case "title":
		err = c.title(deps)
	case "ids":
		err = c.identifiers(deps)
	default:
		err = c.text(deps)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
	}
	return err
}

func (c *DataCmd) title(deps *Dependencies) error {
	title, err := deps.Documents.FetchTitle(deps.Ctx, c.Ref, c.Lang)
	if err != nil {
		return err
	}

	if !c.CaselawMetadata {
		fmt.Fprintln(deps.Stdout, title)
		return nil
	}

	meta := eurlex.ParseCaseTitle(title)
	fmt.Fprintf(deps.Stdout, "title\t%s\n", meta.Title)
	fmt.Fprintf(deps.Stdout, "parties\t%s\n", meta.Parties)
	fmt.Fprintf(deps.Stdout, "case_number\t%s\n", meta.CaseNumber)
	return nil
}

func (c *DataCmd) identifiers(deps *Dependencies) error {
	ids, err := deps.Documents.FetchIdentifiers(deps.Ctx, c.Ref)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(deps.Stdout, id)
	}
	return nil
}

func (c *DataCmd) text(deps *Dependencies) error {
	res, err := deps.Documents.FetchText(deps.Ctx, c.Ref, eurlex.TextOptions{
		Languages:     c.Lang,
		IncludeBreaks: c.Breaks,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, res.Text)
	return nil
}
