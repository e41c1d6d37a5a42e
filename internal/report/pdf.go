package report

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// turkishFallback folds letters that the core fonts' cp1252 encoding lacks.
var turkishFallback = strings.NewReplacer("ş", "s", "Ş", "S", "ğ", "g", "Ğ", "G", "ı", "i", "İ", "I")

// document wraps an Fpdf with the text encoding and captions of one render.
type document struct {
	pdf    *fpdf.Fpdf
	enc    func(string) string
	labels captions
}

func newDocument(orientation, size string, opts Options, title string) *document {
	pdf := fpdf.New(orientation, "mm", size, "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCreator("cargo-service", false)
	pdf.SetCreationDate(opts.GeneratedAt)

	toCP := pdf.UnicodeTranslatorFromDescriptor("")
	d := &document{
		pdf:    pdf,
		enc:    func(s string) string { return toCP(turkishFallback.Replace(s)) },
		labels: newCaptions(opts.Locale),
	}
	pdf.SetTitle(d.enc(title), false)
	return d
}

// text writes a single cell at (x, y).
func (d *document) text(x, y, w, h float64, s, align string) {
	d.pdf.SetXY(x, y)
	d.pdf.CellFormat(w, h, d.enc(s), "", 0, align, false, 0, "")
}

// fit truncates s with "..." so that it fits in w at the current font.
func (d *document) fit(s string, w float64) string {
	if d.pdf.GetStringWidth(d.enc(s)) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && d.pdf.GetStringWidth(d.enc(string(r)+"...")) > w {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// WritePDF renders the load plan: summary, top and side views, then the placement table
// and the units that did not fit.
func WritePDF(w io.Writer, plan Plan, opts Options) error {
	opts = opts.withDefaults()
	c := plan.Container
	if !(c.Length > 0 && c.Width > 0 && c.Height > 0) {
		return fmt.Errorf("container %q has no usable dimensions", c.ID)
	}

	d := newDocument("L", "A4", opts, plan.title(newCaptions(opts.Locale)))
	d.pdf.AddPage()
	y := d.renderHeader(plan, opts)
	d.renderViews(plan, y)

	d.pdf.AddPage()
	y = d.renderPlacements(plan.Result.Placed, marginTop)
	d.renderUnpacked(plan.Result.Unpacked, y+8)

	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// renderHeader draws title, container line and statistics. It returns the next free y.
func (d *document) renderHeader(plan Plan, opts Options) float64 {
	pdf, c, r := d.pdf, plan.Container, plan.Result

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	d.text(marginLeft, marginTop, contentWidth, 9, plan.title(d.labels), "L")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	generated := fmt.Sprintf("%s: %s", d.labels.get(i18n.ReportKeyGeneratedAt), opts.GeneratedAt.Format("2006-01-02 15:04 MST"))
	d.text(marginLeft, marginTop, contentWidth, 9, generated, "R")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+11, pageWidth-marginRight, marginTop+11)

	pdf.SetFont("Helvetica", "", 10)
	container := fmt.Sprintf("%s: %s (%.0f x %.0f x %.0f cm, %.0f kg)",
		d.labels.get(i18n.ReportKeyContainer), c.Name, c.Length, c.Width, c.Height, c.MaxWeight)
	d.text(marginLeft, marginTop+13, contentWidth, 6, container, "L")

	stats := []struct {
		label string
		value string
	}{
		{d.labels.get(i18n.ReportKeyVolumeUsage), fmt.Sprintf("%.1f%%", r.VolumeUtilization)},
		{d.labels.get(i18n.ReportKeyWeightUsage), fmt.Sprintf("%.1f%%", r.WeightUtilization)},
		{d.labels.get(i18n.ReportKeyTotalVolume), fmt.Sprintf("%.2f / %.2f m3", r.UsedVolume, r.TotalVolume)},
		{d.labels.get(i18n.ReportKeyTotalWeight), fmt.Sprintf("%.1f kg", r.TotalWeight)},
		{d.labels.get(i18n.ReportKeyPacked), fmt.Sprintf("%d", len(r.Placed))},
		{d.labels.get(i18n.ReportKeyUnpacked), fmt.Sprintf("%d", len(r.Unpacked))},
	}

	boxW := contentWidth / float64(len(stats))
	y := marginTop + 21
	pdf.SetFillColor(243, 244, 246)
	pdf.SetDrawColor(209, 213, 219)
	pdf.SetLineWidth(0.2)
	for i, s := range stats {
		x := marginLeft + float64(i)*boxW
		pdf.Rect(x, y, boxW-2, 14, "FD")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(75, 85, 99)
		d.text(x+2, y+1, boxW-6, 5, d.fit(s.label, boxW-6), "L")
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		d.text(x+2, y+6, boxW-6, 7, s.value, "L")
	}
	return y + 20
}

// view projects a placement onto the page plane.
type view struct {
	caption string
	// extent of the container along the horizontal and vertical page axes
	across, up float64
	// rect returns the horizontal offset, vertical offset and size of p in cm
	rect func(p model.PlacedItem) (h, v, hw, vh float64)
	// flip draws v upwards from the bottom edge
	flip bool
	// order sorts placements so nearer boxes are painted last
	order func(a, b model.PlacedItem) int
}

// renderViews draws the top view (x/z) above the side view (x/y).
func (d *document) renderViews(plan Plan, top float64) {
	c := plan.Container
	views := []view{
		{
			caption: d.labels.get(i18n.ReportKeyTopView),
			across:  c.Length,
			up:      c.Width,
			rect: func(p model.PlacedItem) (float64, float64, float64, float64) {
				return p.Position.X, p.Position.Z, p.Dimensions.Width, p.Dimensions.Depth
			},
			order: func(a, b model.PlacedItem) int { return cmp.Compare(a.Top(), b.Top()) },
		},
		{
			caption: d.labels.get(i18n.ReportKeySideView),
			across:  c.Length,
			up:      c.Height,
			flip:    true,
			rect: func(p model.PlacedItem) (float64, float64, float64, float64) {
				return p.Position.X, p.Position.Y, p.Dimensions.Width, p.Dimensions.Height
			},
			order: func(a, b model.PlacedItem) int { return cmp.Compare(b.Position.Z, a.Position.Z) },
		},
	}

	slot := (pageHeight - marginBottom - top) / float64(len(views))
	for i, v := range views {
		d.renderView(v, plan.Result.Placed, top+float64(i)*slot, slot)
	}
}

func (d *document) renderView(v view, placed []model.PlacedItem, top, slot float64) {
	pdf := d.pdf

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	d.text(marginLeft, top, contentWidth, 5, v.caption, "L")

	drawTop := top + 6
	drawH := slot - 14
	scale := math.Min(contentWidth/v.across, drawH/v.up)
	canvasW, canvasH := v.across*scale, v.up*scale
	offsetX := marginLeft + (contentWidth-canvasW)/2

	pdf.SetFillColor(248, 250, 252)
	pdf.SetDrawColor(71, 85, 105)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, drawTop, canvasW, canvasH, "FD")

	ordered := slices.Clone(placed)
	slices.SortStableFunc(ordered, v.order)

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(30, 30, 30)
	for _, p := range ordered {
		h, vert, hw, vh := v.rect(p)
		px := offsetX + h*scale
		py := drawTop + vert*scale
		if v.flip {
			py = drawTop + canvasH - (vert+vh)*scale
		}
		pw, ph := hw*scale, vh*scale

		col := parseColor(p.Item.Color)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 8 && ph > 4 {
			pdf.SetFont("Helvetica", "", math.Min(7, ph*1.6))
			if col.dark() {
				pdf.SetTextColor(255, 255, 255)
			} else {
				pdf.SetTextColor(0, 0, 0)
			}
			d.text(px, py+(ph-3)/2, pw, 3, d.fit(p.Item.ID, pw-1), "C")
		}
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	d.text(offsetX, drawTop+canvasH+1, canvasW, 4, fmt.Sprintf("%.0f cm", v.across), "C")
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, drawTop+canvasH/2)
	d.text(offsetX-3-15, drawTop+canvasH/2-2, 30, 4, fmt.Sprintf("%.0f cm", v.up), "C")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
}

var placementColumns = []float64{10, 38, 62, 45, 45, 25, 42}

// tableHeader draws the placement table header row at y.
func (d *document) tableHeader(y float64) {
	headers := []string{
		"#",
		"ID",
		d.labels.get(i18n.ReportKeyItem),
		d.labels.get(i18n.ReportKeyPosition),
		d.labels.get(i18n.ReportKeyDimensions),
		d.labels.get(i18n.ReportKeyWeight),
		d.labels.get(i18n.ReportKeyConstraints),
	}

	d.pdf.SetFont("Helvetica", "B", 8)
	d.pdf.SetFillColor(230, 230, 230)
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(0.2)
	x := marginLeft
	for i, h := range headers {
		d.pdf.SetXY(x, y)
		d.pdf.CellFormat(placementColumns[i], rowHeight, d.enc(h), "1", 0, "C", true, 0, "")
		x += placementColumns[i]
	}
}

// renderPlacements draws the placement table, breaking pages as needed. It returns the next free y.
func (d *document) renderPlacements(placed []model.PlacedItem, y float64) float64 {
	pdf := d.pdf

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	d.text(marginLeft, y, contentWidth, 7, fmt.Sprintf("%s (%d)", d.labels.get(i18n.ReportKeyPlacements), len(placed)), "L")
	y += 9
	d.tableHeader(y)
	y += rowHeight

	for i, p := range placed {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
			d.tableHeader(y)
			y += rowHeight
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8)
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Item.ID,
			p.Item.Name,
			fmt.Sprintf("%.0f, %.0f, %.0f", p.Position.X, p.Position.Y, p.Position.Z),
			fmt.Sprintf("%.0f x %.0f x %.0f", p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Depth),
			fmt.Sprintf("%.1f", p.Item.Weight),
			d.labels.constraints(p.Item.Constraints),
		}
		x := marginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			align := "C"
			if j == 1 || j == 2 || j == 6 {
				align = "L"
			}
			pdf.CellFormat(placementColumns[j], rowHeight, d.enc(d.fit(cell, placementColumns[j]-2)), "1", 0, align, true, 0, "")
			x += placementColumns[j]
		}

		col := parseColor(p.Item.Color)
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(marginLeft+1, y+1.5, 3, 3, "F")
		y += rowHeight
	}
	return y
}

// renderUnpacked lists units left out of the container.
func (d *document) renderUnpacked(unpacked []model.UnitItem, y float64) {
	pdf := d.pdf
	if y+20 > pageHeight-marginBottom {
		pdf.AddPage()
		y = marginTop
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	d.text(marginLeft, y, contentWidth, 7, d.labels.get(i18n.ReportKeyUnpackedItems), "L")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	if len(unpacked) == 0 {
		pdf.SetTextColor(22, 163, 74)
		d.text(marginLeft+5, y, contentWidth, 5, d.labels.get(i18n.ReportKeyNothingLeftBehind), "L")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	pdf.SetTextColor(200, 0, 0)
	for _, u := range unpacked {
		if y+5 > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
		}
		line := fmt.Sprintf("- %s (%s): %.0f x %.0f x %.0f cm, %.1f kg", u.ID, u.Name, u.Length, u.Width, u.Height, u.Weight)
		if len(u.Constraints) > 0 {
			line += " [" + d.labels.constraints(u.Constraints) + "]"
		}
		d.text(marginLeft+5, y, contentWidth-5, 5, d.fit(line, contentWidth-5), "L")
		y += 5
	}
	pdf.SetTextColor(0, 0, 0)
}
