package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	types "github.com/yungbote/casebook/internal/domain/cases"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCaseTable(w io.Writer, rows []*types.Case) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDIFFICULTY\tDIAGRAM\tCREATED\tTITLE")
	for _, c := range rows {
		diagram := "-"
		if c.HasDiagram() {
			diagram = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Difficulty, diagram, c.CreatedAt.UTC().Format(time.RFC3339), c.DisplayTitle())
	}
	return tw.Flush()
}

func writeCaseDetail(w io.Writer, c *types.Case) {
	fmt.Fprintf(w, "Case %d: %s\n", c.ID, c.DisplayTitle())
	fmt.Fprintf(w, "Difficulty: %s\n", c.Difficulty)
	fmt.Fprintf(w, "Created:    %s\n", c.CreatedAt.UTC().Format(time.RFC3339))
	if c.HasDiagram() {
		fmt.Fprintf(w, "Diagram:    %d bytes\n", len(*c.ExcalidrawContent))
	} else {
		fmt.Fprintln(w, "Diagram:    none")
	}
	fmt.Fprintf(w, "\n%s\n", c.Description)
}

func (c *cli) printCase(w io.Writer, row *types.Case) error {
	if c.jsonOutput {
		return writeJSON(w, row)
	}
	writeCaseDetail(w, row)
	return nil
}
