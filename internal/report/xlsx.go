package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/cargo-service/internal/i18n"
)

// Workbook sheet names.
const (
	SheetPlacements = "Placements"
	SheetUnpacked   = "Unpacked"
	SheetSummary    = "Summary"
)

// WriteXLSX renders the plan as a workbook with placement, unpacked and summary sheets.
func WriteXLSX(w io.Writer, plan Plan, opts Options) error {
	opts = opts.withDefaults()
	labels := newCaptions(opts.Locale)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPlacements); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetUnpacked, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	xw := &sheetWriter{f: f, bold: bold, swatches: map[string]int{}}

	xw.header(SheetPlacements, []any{
		"#", "ID", labels.get(i18n.ReportKeyItem), "X", "Y", "Z",
		"W", "H", "D", labels.get(i18n.ReportKeyWeight), labels.get(i18n.ReportKeyConstraints),
	})
	for i, p := range plan.Result.Placed {
		row := i + 2
		xw.row(SheetPlacements, row, []any{
			i + 1, p.Item.ID, p.Item.Name,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Depth,
			p.Item.Weight, labels.constraints(p.Item.Constraints),
		})
		xw.swatch(SheetPlacements, "B", row, p.Item.Color)
	}

	xw.header(SheetUnpacked, []any{
		"ID", labels.get(i18n.ReportKeyItem), "L", "W", "H",
		labels.get(i18n.ReportKeyWeight), labels.get(i18n.ReportKeyConstraints),
	})
	for i, u := range plan.Result.Unpacked {
		row := i + 2
		xw.row(SheetUnpacked, row, []any{
			u.ID, u.Name, u.Length, u.Width, u.Height, u.Weight, labels.constraints(u.Constraints),
		})
		xw.swatch(SheetUnpacked, "A", row, u.Color)
	}

	c, r := plan.Container, plan.Result
	summary := [][]any{
		{labels.get(i18n.ReportKeySummary), plan.title(labels)},
		{labels.get(i18n.ReportKeyContainer), c.Name},
		{"ID", c.ID},
		{"L x W x H (cm)", fmt.Sprintf("%.0f x %.0f x %.0f", c.Length, c.Width, c.Height)},
		{"Max (kg)", c.MaxWeight},
		{labels.get(i18n.ReportKeyPacked), len(r.Placed)},
		{labels.get(i18n.ReportKeyUnpacked), len(r.Unpacked)},
		{labels.get(i18n.ReportKeyTotalVolume) + " (m3)", r.TotalVolume},
		{labels.get(i18n.ReportKeyUsedVolume) + " (m3)", r.UsedVolume},
		{labels.get(i18n.ReportKeyTotalWeight) + " (kg)", r.TotalWeight},
		{labels.get(i18n.ReportKeyVolumeUsage) + " (%)", r.VolumeUtilization},
		{labels.get(i18n.ReportKeyWeightUsage) + " (%)", r.WeightUtilization},
		{labels.get(i18n.ReportKeyGeneratedAt), opts.GeneratedAt.UTC().Format("2006-01-02 15:04:05Z")},
	}
	for i, line := range summary {
		xw.row(SheetSummary, i+1, line)
	}
	xw.style(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold)

	if xw.err != nil {
		return xw.err
	}
	for sheet, width := range map[string]float64{SheetPlacements: 14, SheetUnpacked: 14, SheetSummary: 28} {
		if err := f.SetColWidth(sheet, "A", "K", width); err != nil {
			return fmt.Errorf("failed to size columns: %w", err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetWriter keeps the first error across a run of cell writes.
type sheetWriter struct {
	f        *excelize.File
	bold     int
	swatches map[string]int
	err      error
}

func (x *sheetWriter) row(sheet string, row int, values []any) {
	if x.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		x.err = err
		return
	}
	if err := x.f.SetSheetRow(sheet, cell, &values); err != nil {
		x.err = fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
}

// header writes the first row of sheet in bold and freezes it.
func (x *sheetWriter) header(sheet string, values []any) {
	x.row(sheet, 1, values)
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil && x.err == nil {
		x.err = err
		return
	}
	x.style(sheet, "A1", last, x.bold)
	if x.err == nil {
		x.err = x.f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
}

func (x *sheetWriter) style(sheet, from, to string, style int) {
	if x.err == nil {
		x.err = x.f.SetCellStyle(sheet, from, to, style)
	}
}

// swatch fills one cell with the item's display color.
func (x *sheetWriter) swatch(sheet, col string, row int, color string) {
	if x.err != nil || color == "" {
		return
	}
	hex := parseColor(color).hex()
	style, ok := x.swatches[hex]
	if !ok {
		font := "000000"
		if parseColor(color).dark() {
			font = "FFFFFF"
		}
		var err error
		style, err = x.f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Color: font},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
		})
		if err != nil {
			x.err = err
			return
		}
		x.swatches[hex] = style
	}
	cell := fmt.Sprintf("%s%d", col, row)
	x.style(sheet, cell, cell, style)
}
