package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/AndreyAkinshin/triage/internal/testparser"
	"github.com/AndreyAkinshin/triage/internal/triage"
)

// Sheet names, in workbook order.
const (
	SheetSummary  = "Summary by Class"
	SheetErrors   = "Error Details"
	SheetFailures = "Failure Details"
	SheetTodo     = "TODO List"
	SheetStats    = "Global Statistics"
)

const (
	headerColor  = "366092"
	errorColor   = "FFCCCC"
	failureColor = "FFE5CC"
)

// WriteSpreadsheet writes the five-sheet workbook to path.
func WriteSpreadsheet(path string, a *triage.Analysis) error {
	f, err := BuildSpreadsheet(a)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return f.SaveAs(path)
}

// BuildSpreadsheet builds the workbook in memory.
func BuildSpreadsheet(a *triage.Analysis) (*excelize.File, error) {
	f := excelize.NewFile()
	b := &sheetBuilder{f: f, fills: make(map[string]int)}

	b.initStyles()
	b.summarySheet(a)
	b.detailSheet(SheetErrors, a, "Error Message", errorColor, (*triage.ClassSummary).Errors)
	b.detailSheet(SheetFailures, a, "Failure Message", failureColor, (*triage.ClassSummary).Failures)
	b.todoSheet(a)
	b.statsSheet(a)

	if b.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("build spreadsheet: %w", b.err)
	}
	return f, nil
}

// sheetBuilder wraps excelize calls and keeps the first error; once an error
// is recorded every later call is a no-op.
type sheetBuilder struct {
	f   *excelize.File
	err error

	header int
	title  int
	bold   int
	cell   int
	center int
	fills  map[string]int // color -> centered bordered filled style
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

func (b *sheetBuilder) style(s *excelize.Style) int {
	if b.err != nil {
		return 0
	}
	id, err := b.f.NewStyle(s)
	b.err = err
	return id
}

func (b *sheetBuilder) initStyles() {
	b.header = b.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: centered,
		Border:    thinBorder,
	})
	b.title = b.style(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	b.bold = b.style(&excelize.Style{Font: &excelize.Font{Bold: true}})
	b.cell = b.style(&excelize.Style{Border: thinBorder})
	b.center = b.style(&excelize.Style{Border: thinBorder, Alignment: centered})
}

// fill returns the style for a bordered, centered cell filled with color.
func (b *sheetBuilder) fill(color string) int {
	if id, ok := b.fills[color]; ok {
		return id
	}
	id := b.style(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: centered,
		Border:    thinBorder,
	})
	b.fills[color] = id
	return id
}

// sheet creates (or, for the first one, renames the default) sheet.
func (b *sheetBuilder) sheet(name string) {
	if b.err != nil {
		return
	}
	if b.f.SheetCount == 1 && b.f.GetSheetName(0) == "Sheet1" {
		b.err = b.f.SetSheetName("Sheet1", name)
		return
	}
	_, b.err = b.f.NewSheet(name)
}

func (b *sheetBuilder) cellName(col, row int) string {
	if b.err != nil {
		return ""
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	b.err = err
	return name
}

// row writes values starting at column A of row.
func (b *sheetBuilder) row(sheet string, row int, values ...interface{}) {
	start := b.cellName(1, row)
	if b.err != nil {
		return
	}
	b.err = b.f.SetSheetRow(sheet, start, &values)
}

// styleCells applies style to columns [fromCol, toCol] of row.
func (b *sheetBuilder) styleCells(sheet string, row, fromCol, toCol, style int) {
	from, to := b.cellName(fromCol, row), b.cellName(toCol, row)
	if b.err != nil {
		return
	}
	b.err = b.f.SetCellStyle(sheet, from, to, style)
}

// headerRow writes and styles the header on row 1.
func (b *sheetBuilder) headerRow(sheet string, headers ...interface{}) {
	b.row(sheet, 1, headers...)
	b.styleCells(sheet, 1, 1, len(headers), b.header)
}

// bodyRow writes a bordered row, centering the given 1-based columns.
func (b *sheetBuilder) bodyRow(sheet string, row int, values []interface{}, centerCols ...int) {
	b.row(sheet, row, values...)
	b.styleCells(sheet, row, 1, len(values), b.cell)
	for _, col := range centerCols {
		b.styleCells(sheet, row, col, col, b.center)
	}
}

func (b *sheetBuilder) widths(sheet string, widths ...float64) {
	for i, width := range widths {
		if b.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			b.err = err
			return
		}
		b.err = b.f.SetColWidth(sheet, col, col, width)
	}
}

func (b *sheetBuilder) summarySheet(a *triage.Analysis) {
	const sheet = SheetSummary
	b.sheet(sheet)
	b.headerRow(sheet, "#", "Test Class", "Full Namespace", "Errors", "Failures", "Total", "Priority")

	for i, c := range a.Sorted() {
		row := i + 2
		tier := c.Tier()
		b.bodyRow(sheet, row, []interface{}{
			i + 1, c.ShortName(), c.Name, c.ErrorCount(), c.FailureCount(), c.TotalCount(), tier.Label(),
		}, 1, 4, 5, 6)
		b.styleCells(sheet, row, 7, 7, b.fill(tier.Color()))
	}
	b.widths(sheet, 5, 30, 50, 10, 10, 10, 15)
}

func (b *sheetBuilder) detailSheet(sheet string, a *triage.Analysis, messageHeader, kindColor string, records func(*triage.ClassSummary) []testparser.Outcome) {
	b.sheet(sheet)
	b.headerRow(sheet, "#", "Class", "Test Method", "Type", messageHeader)

	n := 0
	for _, c := range a.Sorted() {
		for _, o := range records(c) {
			n++
			row := n + 1
			b.bodyRow(sheet, row, []interface{}{n, c.ShortName(), o.Method, o.Kind.String(), o.Message}, 1)
			b.styleCells(sheet, row, 4, 4, b.fill(kindColor))
		}
	}
	b.widths(sheet, 5, 30, 30, 10, 80)
}

func (b *sheetBuilder) todoSheet(a *triage.Analysis) {
	const sheet = SheetTodo
	b.sheet(sheet)
	b.headerRow(sheet, "☐", "Priority", "Full Class", "Total Problems", "Notes / Actions")

	for i, c := range a.Sorted() {
		row := i + 2
		tier := c.Tier()
		notes := fmt.Sprintf("%d errors, %d failures", c.ErrorCount(), c.FailureCount())
		b.bodyRow(sheet, row, []interface{}{"☐", tier.Label(), c.Name, c.TotalCount(), notes}, 1, 4)
		b.styleCells(sheet, row, 2, 2, b.fill(tier.Color()))
	}
	b.widths(sheet, 5, 15, 50, 15, 40)
}

func (b *sheetBuilder) statsSheet(a *triage.Analysis) {
	const sheet = SheetStats
	b.sheet(sheet)
	stats := a.Stats()

	rows := [][]interface{}{
		{"📊 TEST SUMMARY", ""},
		{"Classes with problems", stats.Classes},
		{"Total errors", stats.Errors},
		{"Total failures", stats.Failures},
		{"Total problems", stats.Problems},
		{"", ""},
		{"📈 BREAKDOWN BY PRIORITY", ""},
	}
	for _, tier := range triage.Tiers() {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%s (%s)", tier.Label(), tier.Range()),
			stats.PerTier[tier],
		})
	}

	for i, values := range rows {
		row := i + 1
		b.row(sheet, row, values...)
		if label, _ := values[0].(string); label == "" {
			continue
		}
		if _, isTitle := values[1].(string); isTitle {
			b.styleCells(sheet, row, 1, 1, b.title)
			continue
		}
		b.styleCells(sheet, row, 1, 1, b.bold)
		b.styleCells(sheet, row, 2, 2, b.center)
	}
	b.widths(sheet, 35, 20)
}
