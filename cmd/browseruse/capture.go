package main

import (
	"fmt"

	"github.com/rknoche6/fast-browser-use/capture"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	progress := func(event capture.ProgressEvent) {
		switch event.Type {
		case capture.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case capture.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case capture.ProgressFinished:
			// Summary printed after the capture completes
		}
	}

	result, err := deps.Capturer.CaptureSite(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error capturing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s)\n",
		result.Saved, capture.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Failed %d pages\n", result.Failed)
	}

	return nil
}
