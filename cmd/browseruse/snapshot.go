package main

import (
	"encoding/json"
	"fmt"
	"os"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/extract"
	"github.com/rknoche6/fast-browser-use/html"
)

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
	var root *browseruse.ElementNode
	var title string

	if c.Static {
		page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}

		title = page.Title

		tree, err := html.Parse(page.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}

		snapshotter := &extract.Snapshotter{MaxDepth: c.Depth}
		root, err = snapshotter.Snapshot(tree)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}
	} else {
		session, err := deps.Browser.OpenSession(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}
		defer session.Close()

		page, err := session.Page()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}

		title = page.Title

		tree, err := html.Parse(page.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}
		session.Bind(tree)

		snapshotter := &extract.Snapshotter{
			MaxDepth: c.Depth,
			Style:    session,
			Geometry: session,
		}
		root, err = snapshotter.Snapshot(tree)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}
	}

	// Assign indices to visible interactive elements
	extract.IndexSnapshot(root)

	data, err := extract.MarshalSnapshot(root)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
		return err
	}

	if c.Pretty {
		var buf []byte
		var obj any
		if err := json.Unmarshal(data, &obj); err == nil {
			if buf, err = json.MarshalIndent(obj, "", "  "); err == nil {
				data = buf
			}
		}
	}

	if c.Save {
		cpt := &browseruse.Capture{
			URL:      c.URL,
			Title:    title,
			Snapshot: string(data),
		}
		if err := deps.Captures.SaveCapture(deps.Ctx, cpt); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", browseruse.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved snapshot %s\n", cpt.ID)
	}

	if c.Out != "" {
		return os.WriteFile(c.Out, append(data, '\n'), 0644)
	}

	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
