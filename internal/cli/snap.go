package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/packing"
	"github.com/guttosm/cargo-service/internal/service"
)

type snapFlags struct {
	container string
	size      string
	maxWeight float64
	index     int
	x, y, z   float64
	apply     bool
}

func newSnapCommand(global *globalFlags) *cobra.Command {
	flags := &snapFlags{}

	cmd := &cobra.Command{
		Use:   "snap PLAN",
		Short: "Snap a placement of a saved plan to walls and neighbors",
		Long: `Snap placement --index of PLAN, a result written by "cargoctl pack --json",
as if it were dragged to (--x, --y, --z). With --apply the placement is moved
there and the updated plan is printed as JSON.

Examples:
  cargoctl snap plan.json --index 2 --x 118 --y 0 --z 3
  cargoctl snap plan.json --index 2 --x 118 --y 0 --z 3 --apply > moved.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnap(cmd, global, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.container, "container", "c", "", "Container preset id")
	cmd.Flags().StringVar(&flags.size, "size", "", "Custom container inner size LxWxH in cm")
	cmd.Flags().Float64Var(&flags.maxWeight, "max-weight", 0, "Payload limit of the custom container in kg")
	cmd.Flags().IntVarP(&flags.index, "index", "i", 0, "Index of the placement to move")
	cmd.Flags().Float64Var(&flags.x, "x", 0, "Dragged x position in cm")
	cmd.Flags().Float64Var(&flags.y, "y", 0, "Dragged y position in cm")
	cmd.Flags().Float64Var(&flags.z, "z", 0, "Dragged z position in cm")
	cmd.Flags().BoolVar(&flags.apply, "apply", false, "Move the placement and print the updated plan")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

func runSnap(cmd *cobra.Command, global *globalFlags, flags *snapFlags, path string) error {
	plan, err := loadPlan(path)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}
	if flags.index < 0 || flags.index >= len(plan.Placed) {
		return exitErr(ExitInvalid, fmt.Errorf("%w: %d of %d placements", packing.ErrIndexOutOfRange, flags.index, len(plan.Placed)))
	}

	inline, err := customContainer(flags.size, flags.maxWeight)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}
	container, err := service.NewContainerService(nil).Resolve(cmd.Context(), flags.container, inline)
	if err != nil {
		return exitErr(ExitInvalid, err)
	}

	dims := plan.Placed[flags.index].Dimensions
	if !packing.ContainerBox(container).Fits(dims) {
		return exitErr(ExitInvalid, fmt.Errorf("placement %d (%gx%gx%g) exceeds container %s",
			flags.index, dims.Width, dims.Height, dims.Depth, container.ID))
	}

	packer := service.NewCargoPackerService()
	defer packer.Close()

	dragged := model.Position{X: flags.x, Y: flags.y, Z: flags.z}
	out := cmd.OutOrStdout()

	if flags.apply {
		moved, err := packer.Reposition(plan, container, flags.index, dragged, true)
		if err != nil {
			return exitErr(ExitInvalid, err)
		}
		return writeJSON(out, moved)
	}

	snapped := packer.Snap(dragged, dims, container, plan.Placed, flags.index)
	if global.json {
		return writeJSON(out, snapped)
	}
	fmt.Fprintf(out, "%s -> (%g, %g, %g) snapped x=%t y=%t z=%t overlaps=%t\n",
		plan.Placed[flags.index].Item.ID, snapped.X, snapped.Y, snapped.Z,
		snapped.SnappedX, snapped.SnappedY, snapped.SnappedZ, snapped.Overlaps)
	return nil
}

// loadPlan reads a packing result. Comments and trailing commas are allowed.
func loadPlan(path string) (model.PackingResult, error) {
	var plan model.PackingResult
	data, err := os.ReadFile(path)
	if err != nil {
		return plan, err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &plan); err != nil {
		return plan, fmt.Errorf("invalid plan %s: %w", path, err)
	}
	if len(plan.Placed) == 0 {
		return plan, errors.New("plan has no placed items")
	}
	return plan, nil
}
