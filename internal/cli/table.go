package cli

import "strings"

// Table is a plain-text table formatter with dynamic column widths. Swatch
// cells contain ANSI escapes, so callers pass a display width override for
// those columns via SetColumnDisplayWidth.
type Table struct {
	headers       []string
	rows          [][]string
	displayWidths map[int]int
	padding       int
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:       headers,
		displayWidths: make(map[int]int),
		padding:       2,
	}
}

// SetColumnDisplayWidth fixes the rendered width of a column whose cell
// content length differs from its display length (ANSI-styled cells).
func (t *Table) SetColumnDisplayWidth(col, width int) {
	t.displayWidths[col] = width
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table as a string with a dashed separator under the
// header row.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w, fixed := t.displayWidths[i]; fixed {
				widths[i] = max(widths[i], w)
				continue
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if _, fixed := t.displayWidths[i]; fixed {
				// Styled cell: assume it already occupies its display width.
				cells[i] = cell
				continue
			}
			cells[i] = padRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// yesNo renders a boolean for table cells.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
