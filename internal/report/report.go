// Package report renders load plans as printable documents.
//
// Three formats are supported: a PDF load plan with top and side views of the container,
// a PDF sheet of QR-coded cargo labels (one per placed unit) and an Excel workbook.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/metrics"
)

// Format identifies a report document type.
type Format string

const (
	FormatPDF    Format = "pdf"
	FormatLabels Format = "labels"
	FormatXLSX   Format = "xlsx"
)

var (
	// ErrUnsupportedFormat is returned for an unknown report format.
	ErrUnsupportedFormat = errors.New("unsupported report format")
	// ErrNothingPlaced is returned when labels are requested for a plan without placements.
	ErrNothingPlaced = errors.New("no placed items to label")
)

// ParseFormat maps a format name to a Format. An empty name selects the PDF load plan.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatLabels:
		return FormatLabels, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ContentType returns the MIME type of the rendered document.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// FileName returns a download name for a report of the given base name.
func (f Format) FileName(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "load-plan"
	}
	switch f {
	case FormatLabels:
		return base + "-labels.pdf"
	case FormatXLSX:
		return base + ".xlsx"
	default:
		return base + ".pdf"
	}
}

// Plan is a container with the placements computed for it.
type Plan struct {
	Title     string
	Container model.ContainerSpec
	Result    model.PackingResult
}

// Options control localization and the printed generation time.
type Options struct {
	Locale      string
	GeneratedAt time.Time
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = i18n.DefaultLocale
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

// Render writes plan to w in the given format and records the outcome.
func Render(w io.Writer, format Format, plan Plan, opts Options) error {
	var err error
	switch format {
	case FormatPDF:
		err = WritePDF(w, plan, opts)
	case FormatLabels:
		err = WriteLabels(w, plan, opts)
	case FormatXLSX:
		err = WriteXLSX(w, plan, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordReport(string(format), status)
	return err
}

// captions resolves report captions for one locale.
type captions struct {
	locale string
	tr     *i18n.Translator
}

func newCaptions(locale string) captions {
	return captions{locale: locale, tr: i18n.GetTranslator()}
}

func (c captions) get(key string) string {
	return c.tr.Translate(key, c.locale)
}

func (c captions) constraint(tag model.Constraint) string {
	return c.get(i18n.ConstraintLabelPrefix + string(tag))
}

func (c captions) constraints(tags []model.Constraint) string {
	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = c.constraint(t)
	}
	return strings.Join(labels, ", ")
}

func (p Plan) title(c captions) string {
	if p.Title != "" {
		return p.Title
	}
	return c.get(i18n.ReportKeyTitle)
}

// rgb is a parsed display color.
type rgb struct {
	R, G, B int
}

var fallbackColor = rgb{R: 148, G: 163, B: 184}

// parseColor reads "#rrggbb" or "#rgb". Anything else yields a neutral gray.
func parseColor(s string) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return rgb{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// hex returns the color as RRGGBB without a leading '#'.
func (c rgb) hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// dark reports whether white text reads better than black on c.
func (c rgb) dark() bool {
	return c.R*299+c.G*587+c.B*114 < 128000
}
