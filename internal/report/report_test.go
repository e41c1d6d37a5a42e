package report_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/packing"
	"github.com/guttosm/cargo-service/internal/report"
)

var generatedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// buildPlan packs a mixed load into a 20ft container. The mast is longer than the container.
func buildPlan(t *testing.T) report.Plan {
	t.Helper()

	container, ok := model.Preset("20ft")
	require.True(t, ok)

	items := []model.ItemSpec{
		{ID: "pallet", Name: "Euro pallet", Length: 120, Width: 80, Height: 140, Weight: 450, Quantity: 4, Color: "#3b82f6",
			Constraints: []model.Constraint{model.ConstraintHeavyBottom}},
		{ID: "tv", Name: "Televizyon kutusu", Length: 110, Width: 20, Height: 70, Weight: 18, Quantity: 3, Color: "#ec4899",
			Constraints: []model.Constraint{model.ConstraintFragile, model.ConstraintNoRotate}},
		{ID: "lamp", Name: "Lamp", Length: 30, Width: 30, Height: 50, Weight: 2, Quantity: 2, Color: "#f59e0b",
			Constraints: []model.Constraint{model.ConstraintMustBeOnTop}},
		{ID: "mast", Name: "Antenna mast", Length: 900, Width: 20, Height: 20, Weight: 40, Quantity: 1},
	}

	result := packing.Pack(items, container)
	require.NotEmpty(t, result.Placed)
	require.NotEmpty(t, result.Unpacked)

	return report.Plan{Container: container, Result: result}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    report.Format
		wantErr bool
	}{
		{"", report.FormatPDF, false},
		{"PDF", report.FormatPDF, false},
		{"labels", report.FormatLabels, false},
		{"xlsx", report.FormatXLSX, false},
		{"excel", report.FormatXLSX, false},
		{"docx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ContentTypeAndFileName(t *testing.T) {
	assert.Equal(t, "application/pdf", report.FormatPDF.ContentType())
	assert.Equal(t, "application/pdf", report.FormatLabels.ContentType())
	assert.Contains(t, report.FormatXLSX.ContentType(), "spreadsheetml")

	assert.Equal(t, "week-42.pdf", report.FormatPDF.FileName("week-42"))
	assert.Equal(t, "week-42-labels.pdf", report.FormatLabels.FileName("week-42"))
	assert.Equal(t, "load-plan.xlsx", report.FormatXLSX.FileName(" "))
}

func TestWritePDF(t *testing.T) {
	plan := buildPlan(t)

	for _, locale := range []string{"en", "tr"} {
		t.Run(locale, func(t *testing.T) {
			var buf bytes.Buffer
			err := report.WritePDF(&buf, plan, report.Options{Locale: locale, GeneratedAt: generatedAt})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
			assert.Greater(t, buf.Len(), 1000)
		})
	}
}

func TestWritePDF_EmptyPlan(t *testing.T) {
	container, _ := model.Preset("40ft-hc")
	var buf bytes.Buffer
	err := report.WritePDF(&buf, report.Plan{Title: "Empty", Container: container}, report.Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_InvalidContainer(t *testing.T) {
	var buf bytes.Buffer
	err := report.WritePDF(&buf, report.Plan{Container: model.ContainerSpec{ID: "broken"}}, report.Options{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestCollectLabels(t *testing.T) {
	plan := buildPlan(t)
	labels := report.CollectLabels(plan)
	require.Len(t, labels, len(plan.Result.Placed))

	for i, l := range labels {
		p := plan.Result.Placed[i]
		assert.Equal(t, i+1, l.Sequence)
		assert.Equal(t, p.Item.ID, l.UnitID)
		assert.Equal(t, "20ft", l.Container)
		assert.Equal(t, p.Position.X, l.X)
		assert.Equal(t, p.Dimensions.Depth, l.Depth)
		assert.Len(t, l.Constraints, len(p.Item.Constraints))
	}
}

func TestLabelInfo_Payload(t *testing.T) {
	info := report.LabelInfo{Sequence: 3, UnitID: "tv-1", Container: "20ft", Width: 110, Constraints: []string{"fragile"}}
	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "tv-1", decoded["id"])
	assert.Equal(t, 3.0, decoded["seq"])
	assert.Equal(t, 110.0, decoded["w_cm"])
	assert.Equal(t, []any{"fragile"}, decoded["constraints"])
}

func TestWriteLabels(t *testing.T) {
	plan := buildPlan(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteLabels(&buf, plan, report.Options{GeneratedAt: generatedAt}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteLabels_ManyPages(t *testing.T) {
	container, _ := model.Preset("40ft-hc")
	result := packing.Pack([]model.ItemSpec{
		{ID: "carton", Length: 40, Width: 30, Height: 30, Weight: 5, Quantity: 75},
	}, container)
	require.Len(t, result.Placed, 75)

	var buf bytes.Buffer
	require.NoError(t, report.WriteLabels(&buf, report.Plan{Container: container, Result: result}, report.Options{}))
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")))
}

func TestWriteLabels_NothingPlaced(t *testing.T) {
	container, _ := model.Preset("20ft")
	var buf bytes.Buffer
	err := report.WriteLabels(&buf, report.Plan{Container: container}, report.Options{})
	assert.ErrorIs(t, err, report.ErrNothingPlaced)
}

func TestWriteXLSX(t *testing.T) {
	plan := buildPlan(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, plan, report.Options{Locale: "en", GeneratedAt: generatedAt}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetPlacements, report.SheetUnpacked, report.SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetPlacements)
	require.NoError(t, err)
	require.Len(t, rows, len(plan.Result.Placed)+1)
	assert.Equal(t, []string{"#", "ID", "Item", "X", "Y", "Z", "W", "H", "D", "Weight (kg)", "Constraints"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, plan.Result.Placed[0].Item.ID, rows[1][1])

	unpacked, err := f.GetRows(report.SheetUnpacked)
	require.NoError(t, err)
	require.Len(t, unpacked, len(plan.Result.Unpacked)+1)
	assert.Equal(t, plan.Result.Unpacked[0].ID, unpacked[1][0])

	packed, err := f.GetCellValue(report.SheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(len(plan.Result.Placed)), packed)
}

func TestRender(t *testing.T) {
	plan := buildPlan(t)

	for _, format := range []report.Format{report.FormatPDF, report.FormatLabels, report.FormatXLSX} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Render(&buf, format, plan, report.Options{}))
			assert.NotZero(t, buf.Len())
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		err := report.Render(&bytes.Buffer{}, report.Format("svg"), plan, report.Options{})
		assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
	})
}
