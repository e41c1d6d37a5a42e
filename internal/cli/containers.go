package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
)

func newContainersCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "containers",
		Short: "List built-in container presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := model.Presets()
			out := cmd.OutOrStdout()
			if global.json {
				return writeJSON(out, map[string]any{"containers": presets, "default_id": model.DefaultContainerID})
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tINNER SIZE (cm)\tMAX WEIGHT (kg)\tVOLUME (m³)")
			for _, c := range presets {
				id := c.ID
				if id == model.DefaultContainerID {
					id += " *"
				}
				fmt.Fprintf(tw, "%s\t%s\t%g x %g x %g\t%g\t%.2f\n",
					id, c.Name, c.Length, c.Width, c.Height, c.MaxWeight, c.Length*c.Width*c.Height/1e6)
			}
			return tw.Flush()
		},
	}
}

func newConstraintsCommand(global *globalFlags) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Show the handling constraint legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr := i18n.GetTranslator()
			locale := tr.Normalize(lang)

			infos := make([]model.ConstraintInfo, 0, len(model.AllConstraints))
			for _, tag := range model.AllConstraints {
				infos = append(infos, model.ConstraintInfo{
					Type:        tag,
					Label:       tr.Translate(i18n.ConstraintLabelPrefix+string(tag), locale),
					Description: tr.Translate(i18n.ConstraintDescriptionPrefix+string(tag), locale),
					Color:       tag.Color(),
				})
			}

			out := cmd.OutOrStdout()
			if global.json {
				return writeJSON(out, map[string]any{"constraints": infos, "locale": locale})
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tLABEL\tCOLOR\tDESCRIPTION")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Type, info.Label, info.Color, info.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", i18n.DefaultLocale, "Language: en, tr")
	return cmd
}
