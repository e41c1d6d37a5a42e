package manifest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type column int

const (
	colID column = iota
	colName
	colLength
	colWidth
	colHeight
	colWeight
	colQuantity
	colConstraints
	colColor
	numColumns
)

// headerAliases maps normalized header cells to columns.
var headerAliases = map[string]column{
	"id": colID, "sku": colID, "code": colID, "item_id": colID,
	"name": colName, "item": colName, "description": colName, "label": colName,
	"length": colLength, "l": colLength, "len": colLength,
	"width": colWidth, "w": colWidth,
	"height": colHeight, "h": colHeight,
	"weight": colWeight, "kg": colWeight, "mass": colWeight,
	"quantity": colQuantity, "qty": colQuantity, "count": colQuantity, "pieces": colQuantity, "pcs": colQuantity,
	"constraints": colConstraints, "flags": colConstraints, "tags": colConstraints,
	"color": colColor, "colour": colColor,
}

var columnNames = [numColumns]string{"id", "name", "length", "width", "height", "weight", "quantity", "constraints", "color"}

// normalizeHeader lowercases a header cell and drops a trailing unit such as "(cm)" or "[kg]".
func normalizeHeader(cell string) string {
	h := strings.ToLower(strings.TrimSpace(cell))
	if i := strings.IndexAny(h, "(["); i > 0 {
		h = strings.TrimSpace(h[:i])
	}
	return strings.Join(strings.Fields(h), "_")
}

// mapColumns returns the index of each known column in header, -1 when absent.
func mapColumns(header []string) ([numColumns]int, error) {
	var idx [numColumns]int
	for i := range idx {
		idx[i] = -1
	}
	for i, cell := range header {
		if col, ok := headerAliases[normalizeHeader(cell)]; ok && idx[col] == -1 {
			idx[col] = i
		}
	}

	var missing []string
	for _, col := range []column{colLength, colWidth, colHeight} {
		if idx[col] == -1 {
			missing = append(missing, columnNames[col])
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: header is missing %s", ErrInvalidManifest, strings.Join(missing, ", "))
	}
	return idx, nil
}

// decodeRows turns a header row plus data rows into a document.
// The returned labels name each item by its 1-based row number.
func decodeRows(rows [][]string) (*document, []string, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no rows", ErrInvalidManifest)
	}
	idx, err := mapColumns(rows[0])
	if err != nil {
		return nil, nil, err
	}

	doc := &document{}
	var labels []string
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		label := fmt.Sprintf("row %d", i+1)
		it, err := parseRow(row, idx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s %v", ErrInvalidManifest, label, err)
		}
		doc.Items = append(doc.Items, it)
		labels = append(labels, label)
	}
	return doc, labels, nil
}

func parseRow(row []string, idx [numColumns]int) (itemDoc, error) {
	cell := func(c column) string {
		if i := idx[c]; i >= 0 && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	it := itemDoc{
		ID:          cell(colID),
		Name:        cell(colName),
		Color:       cell(colColor),
		Constraints: splitTags(cell(colConstraints)),
	}

	var err error
	for _, f := range []struct {
		col column
		dst *float64
	}{{colLength, &it.Length}, {colWidth, &it.Width}, {colHeight, &it.Height}, {colWeight, &it.Weight}} {
		if *f.dst, err = parseNumber(cell(f.col)); err != nil {
			return it, fmt.Errorf("%s %w", columnNames[f.col], err)
		}
	}

	if q := cell(colQuantity); q != "" {
		n, err := parseNumber(q)
		if err != nil || n != float64(int(n)) {
			return it, fmt.Errorf("quantity %q is not a whole number", q)
		}
		qty := int(n)
		it.Quantity = &qty
	}
	return it, nil
}

// parseNumber accepts "12.5" and "12,5". An empty cell is zero.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '|' || r == ','
	})
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// detectDelimiter picks the separator that splits the header line into the most fields.
func detectDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func decodeCSV(data []byte) (*document, []string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return decodeRows(rows)
}

// decodeXLSX reads the first sheet of a workbook.
func decodeXLSX(data []byte) (*document, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidManifest)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return decodeRows(rows)
}
