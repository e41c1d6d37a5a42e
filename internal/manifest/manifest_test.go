package manifest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/manifest"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    manifest.Format
		wantErr bool
	}{
		{"yaml", manifest.FormatYAML, false},
		{".yml", manifest.FormatYAML, false},
		{"JSONC", manifest.FormatJSON, false},
		{"csv", manifest.FormatCSV, false},
		{"tsv", manifest.FormatCSV, false},
		{"xlsx", manifest.FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := manifest.ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, manifest.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromName(t *testing.T) {
	f, err := manifest.FormatFromName("loads/week-42.YAML")
	require.NoError(t, err)
	assert.Equal(t, manifest.FormatYAML, f)

	_, err = manifest.FormatFromName("Makefile")
	assert.ErrorIs(t, err, manifest.ErrUnsupportedFormat)
}

func TestParse_YAML(t *testing.T) {
	src := `
name: Week 42
container: 20ft
items:
  - id: crate
    name: Wooden crate
    length: 120
    width: 80
    height: 100
    weight: 250
    quantity: 4
    constraints: [heavy-bottom, "Must be on bottom"]
  - length: 40
    width: 30
    height: 20
    weight: 3.5
    constraints: [fragile]
`
	m, err := manifest.Parse(strings.NewReader(src), manifest.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Week 42", m.Name)
	assert.Equal(t, "20ft", m.ContainerID)
	require.Len(t, m.Items, 2)

	crate := m.Items[0]
	assert.Equal(t, "crate", crate.ID)
	assert.Equal(t, 4, crate.Quantity)
	assert.Equal(t, []model.Constraint{model.ConstraintHeavyBottom, model.ConstraintMustBeOnBottom}, crate.Constraints)
	assert.Equal(t, model.PaletteColor(0), crate.Color)

	box := m.Items[1]
	assert.Equal(t, "item-2", box.ID)
	assert.Equal(t, "item-2", box.Name)
	assert.Equal(t, 1, box.Quantity)
	assert.Equal(t, model.PaletteColor(1), box.Color)
	assert.True(t, box.Has(model.ConstraintFragile))
}

func TestParse_YAMLBareList(t *testing.T) {
	src := "- {id: a, length: 10, width: 10, height: 10, weight: 1}\n"
	m, err := manifest.Parse(strings.NewReader(src), manifest.FormatYAML)
	require.NoError(t, err)
	require.Len(t, m.Items, 1)
	assert.Empty(t, m.ContainerID)
}

func TestParse_JSONWithComments(t *testing.T) {
	src := `{
		// pallet run
		"name": "pallets",
		"container_id": "40ft",
		"items": [
			{"id": "pallet", "length": 120, "width": 100, "height": 150, "weight": 400, "quantity": 2,},
		],
	}`
	m, err := manifest.Parse(strings.NewReader(src), manifest.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "40ft", m.ContainerID)
	require.Len(t, m.Items, 1)
	assert.Equal(t, 2, m.Items[0].Quantity)
}

func TestParse_JSONBareArray(t *testing.T) {
	src := `[{"id": "a", "length": 1, "width": 1, "height": 1}] /* trailing */`
	m, err := manifest.Parse(strings.NewReader(src), manifest.FormatJSON)
	require.NoError(t, err)
	require.Len(t, m.Items, 1)
}

func TestParse_CSV(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "comma with units in headers",
			src: "SKU,Description,Length (cm),Width (cm),Height (cm),Weight (kg),Qty,Flags\n" +
				"tv,Television,100,20,60,15,3,\"fragile;no rotate\"\n" +
				",,,,,,,\n" +
				"box,Carton,50,40,30,8,1,\n",
		},
		{
			name: "semicolon with decimal commas",
			src: "id;name;l;w;h;kg;count;tags\n" +
				"tv;Television;100;20;60;15;3;fragile|no_rotate\n" +
				"box;Carton;50;40;30;8,0;1;\n",
		},
		{
			name: "tab separated",
			src: "code\titem\tlength\twidth\theight\tmass\tpieces\tconstraints\n" +
				"tv\tTelevision\t100\t20\t60\t15\t3\tFragile, No-Rotate\n" +
				"box\tCarton\t50\t40\t30\t8\t\t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse(strings.NewReader(tt.src), manifest.FormatCSV)
			require.NoError(t, err)
			require.Len(t, m.Items, 2)

			tv := m.Items[0]
			assert.Equal(t, "tv", tv.ID)
			assert.Equal(t, "Television", tv.Name)
			assert.Equal(t, 100.0, tv.Length)
			assert.Equal(t, 3, tv.Quantity)
			assert.Equal(t, []model.Constraint{model.ConstraintFragile, model.ConstraintNoRotate}, tv.Constraints)

			box := m.Items[1]
			assert.Equal(t, 8.0, box.Weight)
			assert.Equal(t, 1, box.Quantity)
			assert.Empty(t, box.Constraints)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  manifest.Format
		src     string
		wantMsg string
	}{
		{"empty", manifest.FormatYAML, "  \n", "empty document"},
		{"no items", manifest.FormatJSON, `{"name": "x"}`, "no items"},
		{"malformed yaml", manifest.FormatYAML, "items: [", "invalid manifest"},
		{"malformed json", manifest.FormatJSON, `{"items": }`, "invalid manifest"},
		{"bad dimension", manifest.FormatYAML, "- {id: a, length: 0, width: 1, height: 1}", "items[0] length must be a positive number"},
		{"unknown constraint", manifest.FormatYAML, "- {id: a, length: 1, width: 1, height: 1, constraints: [sideways]}", "unknown constraint"},
		{"zero quantity", manifest.FormatJSON, `[{"id": "a", "length": 1, "width": 1, "height": 1, "quantity": 0}]`, "quantity must be at least 1"},
		{"duplicate id", manifest.FormatYAML, "- {id: a, length: 1, width: 1, height: 1}\n- {id: a, length: 2, width: 2, height: 2}", `items[1] duplicates id "a" of items[0]`},
		{"missing csv columns", manifest.FormatCSV, "name,length,qty\nx,1,1\n", "header is missing width, height"},
		{"bad csv number", manifest.FormatCSV, "length,width,height\n1,abc,1\n", `row 2 width "abc" is not a number`},
		{"fractional quantity", manifest.FormatCSV, "length,width,height,qty\n1,1,1,1.5\n", "row 2 quantity"},
		{"header only", manifest.FormatCSV, "length,width,height\n", "no items"},
		{"unknown format", manifest.Format("toml"), "a = 1", "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse(strings.NewReader(tt.src), tt.format)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("#"), manifest.MaxSize+1)
	_, err := manifest.Parse(bytes.NewReader(big), manifest.FormatYAML)
	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
}

func writeWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, ref, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParse_XLSX(t *testing.T) {
	data := writeWorkbook(t, [][]any{
		{"Name", "Length", "Width", "Height", "Weight", "Quantity", "Constraints", "Colour"},
		{"Drum", 60, 60, 90, 180.5, 2, "heavy_bottom", "#111111"},
		{},
		{"Lamp", 30, 30, 50, 2, 1, "must_be_on_top"},
	})

	m, err := manifest.Parse(bytes.NewReader(data), manifest.FormatXLSX)
	require.NoError(t, err)
	require.Len(t, m.Items, 2)

	drum := m.Items[0]
	assert.Equal(t, "item-1", drum.ID)
	assert.Equal(t, "Drum", drum.Name)
	assert.Equal(t, 180.5, drum.Weight)
	assert.Equal(t, 2, drum.Quantity)
	assert.Equal(t, "#111111", drum.Color)

	lamp := m.Items[1]
	assert.Equal(t, "item-2", lamp.ID)
	assert.True(t, lamp.Has(model.ConstraintMustBeOnTop))
}

func TestParse_XLSXNotAWorkbook(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader("definitely not zip"), manifest.FormatXLSX)
	assert.ErrorIs(t, err, manifest.ErrInvalidManifest)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dock-3.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {id: a, length: 1, width: 1, height: 1}\n"), 0o600))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dock-3", m.Name)

	_, err = manifest.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = manifest.Load(filepath.Join(dir, "notes.md"))
	assert.ErrorIs(t, err, manifest.ErrUnsupportedFormat)
}

func TestNormalizeConstraint(t *testing.T) {
	tests := map[string]string{
		"fragile":          "fragile",
		" Must Be On Top ": "must_be_on_top",
		"heavy - bottom":   "heavy_bottom",
		"No-Rotate":        "no_rotate",
		"--":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, manifest.NormalizeConstraint(in), in)
	}
}
