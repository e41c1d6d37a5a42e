package packing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// ErrIndexOutOfRange is returned when a manual edit names a placement that does not exist.
var ErrIndexOutOfRange = errors.New("placement index out of range")

func checkIndex(placed []model.PlacedItem, index int) error {
	if index < 0 || index >= len(placed) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(placed))
	}
	return nil
}

// Reposition moves placed[index] to pos and recomputes the result.
// The new position is taken as given; callers snap it first if desired.
func Reposition(current model.PackingResult, c model.ContainerSpec, index int, pos model.Position) (model.PackingResult, error) {
	if err := checkIndex(current.Placed, index); err != nil {
		return model.PackingResult{}, err
	}
	placed := slices.Clone(current.Placed)
	placed[index].Position = pos
	return Recompute(placed, slices.Clone(current.Unpacked), c), nil
}

// AddPlaced appends item to the placements and recomputes the result. A unit with
// the same ID waiting in the unpacked list is taken out of it.
func AddPlaced(current model.PackingResult, c model.ContainerSpec, item model.PlacedItem) model.PackingResult {
	placed := append(slices.Clone(current.Placed), item)
	unpacked := slices.DeleteFunc(slices.Clone(current.Unpacked), func(u model.UnitItem) bool {
		return u.ID == item.Item.ID
	})
	return Recompute(placed, unpacked, c)
}

// RemovePlaced takes placed[index] out of the container, appends its unit to the
// unpacked list and recomputes the result. The removed unit is returned too.
func RemovePlaced(current model.PackingResult, c model.ContainerSpec, index int) (model.PackingResult, model.UnitItem, error) {
	if err := checkIndex(current.Placed, index); err != nil {
		return model.PackingResult{}, model.UnitItem{}, err
	}
	removed := current.Placed[index].Item
	placed := slices.Delete(slices.Clone(current.Placed), index, index+1)
	unpacked := append(slices.Clone(current.Unpacked), removed)
	return Recompute(placed, unpacked, c), removed, nil
}
