// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// ValidationError represents a field validation error.
// Details holds one message per offending field when several fields fail at once.
type ValidationError struct {
	Field   string
	Message string
	Details map[string]string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNoItems is returned when a pack request carries an empty item list.
var ErrNoItems = &ValidationError{Field: "items", Message: "at least one item is required"}

// ContainerRef selects the target container by preset or custom ID, or inline.
// When both are empty the server default is used.
type ContainerRef struct {
	// ContainerID names a preset or stored custom container.
	ContainerID string `json:"container_id,omitempty" example:"20ft"`
	// Container is an ad-hoc container definition that is not stored.
	Container *model.ContainerSpec `json:"container,omitempty"`
}

func (r ContainerRef) validate() error {
	if r.Container == nil {
		return nil
	}
	c := r.Container
	for _, d := range []struct {
		field string
		value float64
	}{{"length", c.Length}, {"width", c.Width}, {"height", c.Height}, {"max_weight", c.MaxWeight}} {
		if !(d.value > 0) {
			return &ValidationError{Field: "container." + d.field, Message: "must be a positive number"}
		}
	}
	return nil
}

// PlanState is the caller-held placement state that manual edits operate on.
type PlanState struct {
	Placed   []model.PlacedItem `json:"placed"`
	Unpacked []model.UnitItem   `json:"unpacked,omitempty"`
}

// Result wraps the state as a packing result for the engine.
func (s PlanState) Result() model.PackingResult {
	return model.PackingResult{Placed: s.Placed, Unpacked: s.Unpacked}
}

func (s PlanState) validate() error {
	for i, p := range s.Placed {
		if err := validatePlaced(fmt.Sprintf("placed[%d]", i), p); err != nil {
			return err
		}
	}
	return nil
}

func validatePlaced(field string, p model.PlacedItem) error {
	if strings.TrimSpace(p.Item.ID) == "" {
		return &ValidationError{Field: field + ".item.id", Message: "is required"}
	}
	d := p.Dimensions
	if !(d.Width > 0) || !(d.Height > 0) || !(d.Depth > 0) {
		return &ValidationError{Field: field + ".dimensions", Message: "must be positive"}
	}
	if p.Item.Weight < 0 {
		return &ValidationError{Field: field + ".item.weight", Message: "must not be negative"}
	}
	return nil
}

// PackRequest represents the JSON request body for the pack endpoints.
//
// @Description Request to load a list of item specs into a container
// @Example {"container_id": "20ft", "items": [{"id": "crate", "name": "Crate", "length": 120, "width": 80, "height": 100, "weight": 250, "quantity": 4}]}
type PackRequest struct {
	ContainerRef
	// Items are the item specs to load. Each spec expands into Quantity units.
	Items []model.ItemSpec `json:"items" binding:"required"`
} // @name PackRequest

// Validate checks every item spec and reports all invalid fields at once.
func (r *PackRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	if err := r.ContainerRef.validate(); err != nil {
		return err
	}
	return ValidateItems(r.Items)
}

// ApplyDefaults fills missing names and colors.
func (r *PackRequest) ApplyDefaults() {
	ApplyItemDefaults(r.Items)
}

// ValidateItems checks item specs and rejects duplicate IDs.
// Field names in the returned error are indexed, e.g. "items[2].weight".
func ValidateItems(items []model.ItemSpec) error {
	details := map[string]string{}
	seen := make(map[string]int, len(items))
	for i, it := range items {
		for field, msg := range it.Problems() {
			details[fmt.Sprintf("items[%d].%s", i, field)] = msg
		}
		if it.ID == "" {
			continue
		}
		if j, dup := seen[it.ID]; dup {
			details[fmt.Sprintf("items[%d].id", i)] = fmt.Sprintf("duplicates items[%d]", j)
			continue
		}
		seen[it.ID] = i
	}
	if len(details) == 0 {
		return nil
	}

	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return &ValidationError{Field: fields[0], Message: details[fields[0]], Details: details}
}

// ApplyItemDefaults names unnamed items after their ID and assigns palette colors by position.
func ApplyItemDefaults(items []model.ItemSpec) {
	for i := range items {
		if items[i].Name == "" {
			items[i].Name = items[i].ID
		}
		if items[i].Color == "" {
			items[i].Color = model.PaletteColor(i)
		}
	}
}

// SnapRequest represents the JSON request body for the snap endpoint.
//
// @Description Request to snap a dragged item to walls and neighbors
type SnapRequest struct {
	ContainerRef
	// Placed are the current placements.
	Placed []model.PlacedItem `json:"placed"`
	// SelfIndex is the index of the dragged item in Placed, or -1 for a new item.
	SelfIndex int `json:"self_index" example:"0"`
	// Position is the raw drag position.
	Position model.Position `json:"position"`
	// Dimensions of the dragged box. Defaults to Placed[SelfIndex].Dimensions.
	Dimensions *model.Dimensions `json:"dimensions,omitempty"`
} // @name SnapRequest

// Validate checks the index and that the dragged box has dimensions.
func (r *SnapRequest) Validate() error {
	if err := r.ContainerRef.validate(); err != nil {
		return err
	}
	if r.SelfIndex >= len(r.Placed) {
		return &ValidationError{Field: "self_index", Message: "index out of range"}
	}
	if r.Dimensions == nil && r.SelfIndex < 0 {
		return &ValidationError{Field: "dimensions", Message: "required when self_index is negative"}
	}
	if d := r.Dimensions; d != nil && (!(d.Width > 0) || !(d.Height > 0) || !(d.Depth > 0)) {
		return &ValidationError{Field: "dimensions", Message: "must be positive"}
	}
	return nil
}

// CheckFits rejects a dragged box that is larger than c on any axis, since no
// snapped position could hold it inside. Call after Validate.
func (r *SnapRequest) CheckFits(c model.ContainerSpec) error {
	d := r.DraggedDimensions()
	if d.Width > c.Length || d.Height > c.Height || d.Depth > c.Width {
		return &ValidationError{
			Field:   "dimensions",
			Message: fmt.Sprintf("%gx%gx%g exceeds container %s", d.Width, d.Height, d.Depth, c.ID),
		}
	}
	return nil
}

// DraggedDimensions returns the dimensions of the box being snapped.
// Call after Validate.
func (r *SnapRequest) DraggedDimensions() model.Dimensions {
	if r.Dimensions != nil {
		return *r.Dimensions
	}
	return r.Placed[r.SelfIndex].Dimensions
}

// RepositionRequest represents the JSON request body for moving a placement.
//
// @Description Request to move one placement to a new position
type RepositionRequest struct {
	ContainerRef
	PlanState
	// Index of the placement to move.
	Index int `json:"index" example:"0"`
	// Position is the new minimum corner.
	Position model.Position `json:"position"`
	// Snap aligns the new position to walls and neighbors before applying it.
	Snap bool `json:"snap,omitempty"`
} // @name RepositionRequest

// Validate checks the container and plan state. Index range is checked by the engine.
func (r *RepositionRequest) Validate() error {
	if err := r.ContainerRef.validate(); err != nil {
		return err
	}
	return r.PlanState.validate()
}

// AddPlacedRequest represents the JSON request body for binding a unit to a position.
//
// @Description Request to add a placement chosen by the caller
type AddPlacedRequest struct {
	ContainerRef
	PlanState
	// Item is the unit with its chosen position and oriented dimensions.
	Item model.PlacedItem `json:"item"`
} // @name AddPlacedRequest

// Validate checks the container, plan state and the new placement.
func (r *AddPlacedRequest) Validate() error {
	if err := r.ContainerRef.validate(); err != nil {
		return err
	}
	if err := r.PlanState.validate(); err != nil {
		return err
	}
	return validatePlaced("item", r.Item)
}

// RemovePlacedRequest represents the JSON request body for taking a placement out.
//
// @Description Request to remove one placement; the unit is appended to unpacked
type RemovePlacedRequest struct {
	ContainerRef
	PlanState
	// Index of the placement to remove.
	Index int `json:"index" example:"0"`
} // @name RemovePlacedRequest

// Validate checks the container and plan state.
func (r *RemovePlacedRequest) Validate() error {
	if err := r.ContainerRef.validate(); err != nil {
		return err
	}
	return r.PlanState.validate()
}

// ContainerRequest represents the JSON request body for creating or replacing a custom container.
//
// @Description Custom container definition (cm, kg)
// @Example {"name": "Reefer 20", "length": 545, "width": 229, "height": 225, "max_weight": 27400}
type ContainerRequest struct {
	Name      string  `json:"name" example:"Reefer 20"`
	Length    float64 `json:"length" binding:"required" example:"545"`
	Width     float64 `json:"width" binding:"required" example:"229"`
	Height    float64 `json:"height" binding:"required" example:"225"`
	MaxWeight float64 `json:"max_weight" binding:"required" example:"27400"`
	Color     string  `json:"color,omitempty" example:"#0ea5e9"`
} // @name ContainerRequest

// Spec converts the request into a container spec with the given ID.
func (r ContainerRequest) Spec(id string) model.ContainerSpec {
	return model.ContainerSpec{
		ID:        id,
		Name:      strings.TrimSpace(r.Name),
		Length:    r.Length,
		Width:     r.Width,
		Height:    r.Height,
		MaxWeight: r.MaxWeight,
		Color:     r.Color,
	}
}

// ManifestRequest represents the JSON request body for saving a manifest.
//
// @Description Named item list saved for later packing
type ManifestRequest struct {
	Name        string           `json:"name" binding:"required" example:"Week 42 outbound"`
	ContainerID string           `json:"container_id,omitempty" example:"40ft-hc"`
	Items       []model.ItemSpec `json:"items" binding:"required"`
} // @name ManifestRequest

// Validate checks the name and items.
func (r *ManifestRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	return ValidateItems(r.Items)
}
