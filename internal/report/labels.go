package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// LabelInfo is the payload encoded into each cargo label's QR code.
type LabelInfo struct {
	Sequence    int      `json:"seq"`
	UnitID      string   `json:"id"`
	Name        string   `json:"name"`
	Container   string   `json:"container"`
	Width       float64  `json:"w_cm"`
	Height      float64  `json:"h_cm"`
	Depth       float64  `json:"d_cm"`
	Weight      float64  `json:"kg"`
	X           float64  `json:"x_cm"`
	Y           float64  `json:"y_cm"`
	Z           float64  `json:"z_cm"`
	Constraints []string `json:"constraints,omitempty"`
}

// Avery 5160 compatible sheet: 3 columns by 10 rows on US Letter.
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectLabels returns one label per placed unit in loading order.
func CollectLabels(plan Plan) []LabelInfo {
	labels := make([]LabelInfo, 0, len(plan.Result.Placed))
	for i, p := range plan.Result.Placed {
		info := LabelInfo{
			Sequence:  i + 1,
			UnitID:    p.Item.ID,
			Name:      p.Item.Name,
			Container: plan.Container.ID,
			Width:     p.Dimensions.Width,
			Height:    p.Dimensions.Height,
			Depth:     p.Dimensions.Depth,
			Weight:    p.Item.Weight,
			X:         p.Position.X,
			Y:         p.Position.Y,
			Z:         p.Position.Z,
		}
		for _, c := range p.Item.Constraints {
			info.Constraints = append(info.Constraints, string(c))
		}
		labels = append(labels, info)
	}
	return labels
}

// WriteLabels renders a sheet of QR-coded labels, one per placed unit, so that units can
// be tagged in loading order at the dock.
func WriteLabels(w io.Writer, plan Plan, opts Options) error {
	labels := CollectLabels(plan)
	if len(labels) == 0 {
		return ErrNothingPlaced
	}
	opts = opts.withDefaults()

	d := newDocument("P", "Letter", opts, plan.title(newCaptions(opts.Locale)))
	for i, label := range labels {
		if i%labelsPerPage == 0 {
			d.pdf.AddPage()
		}
		pos := i % labelsPerPage
		x := labelMarginLeft + float64(pos%labelCols)*labelWidth
		y := labelMarginTop + float64(pos/labelCols)*labelHeight

		if err := d.renderLabel(x, y, label, plan.Result.Placed[i].Item.Constraints); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.UnitID, err)
		}
	}

	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}
	return nil
}

func (d *document) renderLabel(x, y float64, info LabelInfo, constraints []model.Constraint) error {
	pdf := d.pdf

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	img := fmt.Sprintf("qr_%d", info.Sequence)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(img, opts, bytes.NewReader(png))
	pdf.ImageOptions(img, x+labelWidth-qrSize-labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	d.text(textX, y+labelPadding, textW, 4.5, d.fit(fmt.Sprintf("#%d %s", info.Sequence, info.UnitID), textW), "L")

	pdf.SetFont("Helvetica", "", 7)
	d.text(textX, y+labelPadding+5, textW, 3.5, d.fit(info.Name, textW), "L")
	d.text(textX, y+labelPadding+8.5, textW, 3.5,
		fmt.Sprintf("%.0f x %.0f x %.0f cm, %.1f kg", info.Width, info.Height, info.Depth, info.Weight), "L")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	d.text(textX, y+labelPadding+12, textW, 3,
		fmt.Sprintf("%s @ (%.0f, %.0f, %.0f)", info.Container, info.X, info.Y, info.Z), "L")

	if len(constraints) > 0 {
		pdf.SetFont("Helvetica", "B", 6)
		pdf.SetTextColor(180, 0, 0)
		d.text(textX, y+labelPadding+15.5, textW, 3, d.fit(d.labels.constraints(constraints), textW), "L")
	}
	pdf.SetTextColor(0, 0, 0)
	return pdf.Error()
}
