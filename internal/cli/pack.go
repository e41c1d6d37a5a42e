package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/manifest"
	"github.com/guttosm/cargo-service/internal/report"
	"github.com/guttosm/cargo-service/internal/service"
)

type packFlags struct {
	container    string
	size         string
	maxWeight    float64
	maxUnits     int
	reportPath   string
	reportFormat string
	title        string
	lang         string
	strict       bool
}

func newPackCommand(global *globalFlags) *cobra.Command {
	flags := &packFlags{}

	cmd := &cobra.Command{
		Use:   "pack MANIFEST",
		Short: "Pack a manifest file into a container",
		Long: `Pack the items of a manifest file (YAML, JSON, CSV or XLSX) into a container
and print the load summary. The container named by the manifest is used unless
--container or --size is given.

Examples:
  cargoctl pack week-42.yaml
  cargoctl pack week-42.csv --container 20ft --report week-42.pdf
  cargoctl pack week-42.xlsx --size 545x229x225 --max-weight 27400 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, global, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.container, "container", "c", "", "Container preset id")
	cmd.Flags().StringVar(&flags.size, "size", "", "Custom container inner size LxWxH in cm")
	cmd.Flags().Float64Var(&flags.maxWeight, "max-weight", 0, "Payload limit of the custom container in kg")
	cmd.Flags().IntVar(&flags.maxUnits, "max-units", service.DefaultMaxUnits, "Maximum number of expanded units")
	cmd.Flags().StringVarP(&flags.reportPath, "report", "o", "", "Write a report to this file")
	cmd.Flags().StringVar(&flags.reportFormat, "report-format", "", "Report format: pdf, labels, xlsx (default: from --report extension)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Report title (default: manifest name)")
	cmd.Flags().StringVar(&flags.lang, "lang", i18n.DefaultLocale, "Report language: en, tr")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with code 3 when any unit is left unpacked")

	return cmd
}

func runPack(cmd *cobra.Command, global *globalFlags, flags *packFlags, path string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	m, err := manifest.Load(path)
	if err != nil {
		if errors.Is(err, manifest.ErrInvalidManifest) || errors.Is(err, manifest.ErrUnsupportedFormat) {
			return exitErr(ExitInvalid, err)
		}
		return err
	}
	log.Debug().Str("manifest", m.Name).Int("items", len(m.Items)).Msg("Manifest loaded")

	inline, err := customContainer(flags.size, flags.maxWeight)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}
	id := flags.container
	if id == "" {
		id = m.ContainerID
	}

	container, err := service.NewContainerService(nil).Resolve(ctx, id, inline)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}

	packer := service.NewCargoPackerService(service.WithMaxUnits(flags.maxUnits))
	defer packer.Close()

	started := time.Now()
	result, err := packer.Pack(m.Items, container)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}
	log.Debug().
		Str("container", container.ID).
		Int("placed", len(result.Placed)).
		Int("unpacked", len(result.Unpacked)).
		Dur("duration", time.Since(started)).
		Msg("Packing completed")

	if flags.reportPath != "" {
		title := flags.title
		if title == "" {
			title = m.Name
		}
		plan := report.Plan{Title: title, Container: container, Result: result}
		if err := writeReport(flags.reportPath, flags.reportFormat, plan, flags.lang); err != nil {
			return err
		}
		log.Debug().Str("path", flags.reportPath).Msg("Report written")
	}

	out := cmd.OutOrStdout()
	if global.json {
		if err := writeJSON(out, result); err != nil {
			return err
		}
	} else {
		printSummary(out, m.Name, container, result)
	}

	if flags.strict && len(result.Unpacked) > 0 {
		return exitErr(ExitIncomplete, fmt.Errorf("%d of %d units did not fit", len(result.Unpacked), len(result.Placed)+len(result.Unpacked)))
	}
	return nil
}

// customContainer parses --size and --max-weight into an inline container.
func customContainer(size string, maxWeight float64) (*model.ContainerSpec, error) {
	if size == "" {
		if maxWeight != 0 {
			return nil, errors.New("--max-weight requires --size")
		}
		return nil, nil
	}

	parts := strings.Split(strings.ToLower(size), "x")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid --size %q: want LxWxH", size)
	}
	var dims [3]float64
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &dims[i]); err != nil {
			return nil, fmt.Errorf("invalid --size %q: %w", size, err)
		}
	}

	return &model.ContainerSpec{
		ID:        "custom",
		Name:      fmt.Sprintf("Custom %s", size),
		Length:    dims[0],
		Width:     dims[1],
		Height:    dims[2],
		MaxWeight: maxWeight,
	}, nil
}

// writeReport renders into memory first so a failed render leaves no partial file behind.
func writeReport(path, formatName string, plan report.Plan, lang string) error {
	if formatName == "" {
		formatName = reportFormatFromPath(path)
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}

	var buf bytes.Buffer
	opts := report.Options{Locale: i18n.GetTranslator().Normalize(lang)}
	if err := report.Render(&buf, format, plan, opts); err != nil {
		if errors.Is(err, report.ErrNothingPlaced) {
			return exitErr(ExitIncomplete, err)
		}
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func reportFormatFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, "-labels.pdf"):
		return string(report.FormatLabels)
	case strings.HasSuffix(lower, ".xlsx"):
		return string(report.FormatXLSX)
	default:
		return string(report.FormatPDF)
	}
}

func printSummary(w io.Writer, name string, c model.ContainerSpec, r model.PackingResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if name != "" {
		fmt.Fprintf(tw, "Manifest\t%s\n", name)
	}
	fmt.Fprintf(tw, "Container\t%s (%g x %g x %g cm)\n", c.Name, c.Length, c.Width, c.Height)
	fmt.Fprintf(tw, "Placed\t%d / %d\n", len(r.Placed), len(r.Placed)+len(r.Unpacked))
	fmt.Fprintf(tw, "Volume\t%.2f / %.2f m³ (%.1f%%)\n", r.UsedVolume, r.TotalVolume, r.VolumeUtilization)
	fmt.Fprintf(tw, "Weight\t%g / %g kg (%.1f%%)\n", r.TotalWeight, c.MaxWeight, r.WeightUtilization)
	if len(r.Unpacked) > 0 {
		ids := make([]string, 0, len(r.Unpacked))
		for _, u := range r.Unpacked {
			ids = append(ids, u.ID)
		}
		fmt.Fprintf(tw, "Unpacked\t%s\n", strings.Join(ids, ", "))
	}
	_ = tw.Flush()
}
