package main

import (
	"encoding/json"
	"fmt"
	"os"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Run executes the markdown command.
func (c *MarkdownCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		return err
	}

	result, err := deps.Renderer.RenderContent(deps.Ctx, page.HTML, page.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		return err
	}

	if result.Title == "" {
		result.Title = page.Title
	}

	var out []byte
	if c.JSON {
		out, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
	} else {
		out = []byte(result.Content)
	}

	if c.Out != "" {
		return os.WriteFile(c.Out, append(out, '\n'), 0644)
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
