package main

import (
	"fmt"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/capture"
)

// Run executes the captures list command.
func (c *CapturesListCmd) Run(deps *Dependencies) error {
	filter := browseruse.CaptureFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	captures, err := deps.Captures.FindCaptures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		return err
	}

	if len(captures) == 0 {
		fmt.Fprintln(deps.Stdout, "No captures found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Captures (%d):\n\n", len(captures))
	for _, cpt := range captures {
		title := cpt.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "  %s  %s\n      %s  %s  %s\n",
			cpt.ID, title,
			capture.TruncateURL(cpt.URL, 60),
			capture.FormatBytes(len(cpt.Content)),
			cpt.CapturedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// Run executes the captures show command.
func (c *CapturesShowCmd) Run(deps *Dependencies) error {
	cpt, err := deps.Captures.FindCaptureByID(deps.Ctx, c.ID)
	if err != nil {
		if browseruse.ErrorCode(err) == browseruse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: capture %q not found. Use 'browseruse captures list' to see stored captures.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		}
		return err
	}

	if c.Snapshot {
		if cpt.Snapshot == "" {
			fmt.Fprintf(deps.Stderr, "error: capture %q has no snapshot\n", c.ID)
			return browseruse.Errorf(browseruse.ENOTFOUND, "capture %q has no snapshot", c.ID)
		}
		fmt.Fprintln(deps.Stdout, cpt.Snapshot)
		return nil
	}

	fmt.Fprintln(deps.Stdout, cpt.Content)
	return nil
}

// Run executes the captures delete command.
func (c *CapturesDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Captures.DeleteCapture(deps.Ctx, c.ID); err != nil {
		if browseruse.ErrorCode(err) == browseruse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: capture %q not found\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted capture %s\n", c.ID)
	return nil
}
