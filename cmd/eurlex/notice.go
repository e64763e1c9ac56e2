package main

import (
	"fmt"

	"github.com/fwojciec/eurlex"
)

// Run executes the notice command.
func (c *NoticeCmd) Run(deps *Dependencies) error {
	kind, err := eurlex.ParseNoticeKind(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	n, err := deps.Documents.FetchNotice(deps.Ctx, c.Ref, kind, c.Lang)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}
	if c.Filename != "" {
		n.Filename = c.Filename
	}

	path, err := deps.Writer.WriteNotice(deps.Ctx, n)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", eurlex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s notice to %s (%d bytes)\n", kind, path, len(n.Body))
	return nil
}
