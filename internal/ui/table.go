package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// RowKind selects the style applied to a rendered table row.
type RowKind int

const (
	RowPlain RowKind = iota
	RowHeader
	RowRegression
	RowImprovement
)

// Row is one line of the comparison table.
type Row struct {
	Cells []string
	Kind  RowKind
}

// RenderTable aligns the rows with a tabwriter and colors each line by its
// kind. Styling happens after alignment so ANSI escapes never skew the
// column widths.
func RenderTable(w io.Writer, st Styles, rows []Row) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		if i >= len(rows) {
			break
		}
		var style lipgloss.Style
		switch rows[i].Kind {
		case RowHeader:
			style = st.Header
		case RowRegression:
			style = st.Regression
		case RowImprovement:
			style = st.Improvement
		default:
			style = st.Plain
		}
		if _, err := fmt.Fprintln(w, style.Render(line)); err != nil {
			return err
		}
	}
	return nil
}
