// Package manifest reads cargo lists from YAML, JSON (with comments), CSV and Excel files.
//
// Structured formats carry an optional manifest name and container id next to the items;
// a bare list of items is accepted as well. Tabular formats detect their columns from a
// header row using common aliases (qty, kg, sku, ...).
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// MaxSize bounds the bytes read from a single manifest.
const MaxSize = 8 << 20

var (
	// ErrUnsupportedFormat is returned for an unknown format name or file extension.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
	// ErrInvalidManifest wraps every parse and validation failure.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest is a named cargo list, optionally bound to a container.
type Manifest struct {
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	ContainerID string           `json:"container_id,omitempty" yaml:"container_id,omitempty"`
	Items       []model.ItemSpec `json:"items" yaml:"items"`
}

// ParseFormat maps a format name to a Format. Common aliases (yml, jsonc, xls) are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json", "jsonc":
		return FormatJSON, nil
	case "csv", "tsv", "txt":
		return FormatCSV, nil
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromName picks a Format from a file name's extension.
func FormatFromName(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	return ParseFormat(ext)
}

// Load reads and parses the manifest at path. The format follows the file extension and
// the file's base name is used when the manifest carries no name.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Parse decodes a manifest, fills in defaults and validates every item.
func Parse(r io.Reader, format Format) (*Manifest, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidManifest, MaxSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
	}

	var (
		doc    *document
		labels []string
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatCSV:
		doc, labels, err = decodeCSV(data)
	case FormatXLSX:
		doc, labels, err = decodeXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return doc.manifest(labels)
}

// document is the structured form shared by YAML and JSON.
type document struct {
	Name        string    `yaml:"name" json:"name"`
	Container   string    `yaml:"container" json:"container"`
	ContainerID string    `yaml:"container_id" json:"container_id"`
	Items       []itemDoc `yaml:"items" json:"items"`
}

type itemDoc struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Length      float64  `yaml:"length" json:"length"`
	Width       float64  `yaml:"width" json:"width"`
	Height      float64  `yaml:"height" json:"height"`
	Weight      float64  `yaml:"weight" json:"weight"`
	Quantity    *int     `yaml:"quantity" json:"quantity"`
	Constraints []string `yaml:"constraints" json:"constraints"`
	Color       string   `yaml:"color" json:"color"`
}

func decodeYAML(data []byte) (*document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
	}

	var doc document
	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		if err := node.Decode(&doc.Items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		return &doc, nil
	}
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return &doc, nil
}

func decodeJSON(data []byte) (*document, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))

	var doc document
	var err error
	if len(clean) > 0 && clean[0] == '[' {
		err = json.Unmarshal(clean, &doc.Items)
	} else {
		err = json.Unmarshal(clean, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return &doc, nil
}

// manifest converts the document to validated item specs.
// labels names each item in error messages; structured formats pass nil.
func (d *document) manifest(labels []string) (*Manifest, error) {
	if len(d.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidManifest)
	}

	m := &Manifest{
		Name:        strings.TrimSpace(d.Name),
		ContainerID: strings.TrimSpace(d.ContainerID),
		Items:       make([]model.ItemSpec, 0, len(d.Items)),
	}
	if m.ContainerID == "" {
		m.ContainerID = strings.TrimSpace(d.Container)
	}

	seen := make(map[string]string, len(d.Items))
	for i, it := range d.Items {
		label := fmt.Sprintf("items[%d]", i)
		if i < len(labels) {
			label = labels[i]
		}

		spec := it.spec(i)
		if p := spec.Problems(); p != nil {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidManifest, label, describe(p))
		}
		if prev, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %s duplicates id %q of %s", ErrInvalidManifest, label, spec.ID, prev)
		}
		seen[spec.ID] = label
		m.Items = append(m.Items, spec)
	}
	return m, nil
}

func (it itemDoc) spec(n int) model.ItemSpec {
	spec := model.ItemSpec{
		ID:       strings.TrimSpace(it.ID),
		Name:     strings.TrimSpace(it.Name),
		Length:   it.Length,
		Width:    it.Width,
		Height:   it.Height,
		Weight:   it.Weight,
		Quantity: 1,
		Color:    strings.TrimSpace(it.Color),
	}
	if it.Quantity != nil {
		spec.Quantity = *it.Quantity
	}
	if spec.ID == "" {
		spec.ID = fmt.Sprintf("item-%d", n+1)
	}
	if spec.Name == "" {
		spec.Name = spec.ID
	}
	if spec.Color == "" {
		spec.Color = model.PaletteColor(n)
	}
	for _, c := range it.Constraints {
		if tag := NormalizeConstraint(c); tag != "" {
			spec.Constraints = append(spec.Constraints, model.Constraint(tag))
		}
	}
	return spec
}

// NormalizeConstraint turns a human written tag such as "Must be on top" or
// "heavy-bottom" into its snake_case constraint name.
func NormalizeConstraint(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

func describe(problems map[string]string) string {
	fields := make([]string, 0, len(problems))
	for f := range problems {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + " " + problems[f]
	}
	return strings.Join(parts, "; ")
}
