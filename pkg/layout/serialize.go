package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// document is the on-disk form of a Layout.
type document struct {
	Version int `json:"version"`
	Layout
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	if l.Plan == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no plan")
	}
	return json.MarshalIndent(document{Version: DocumentVersion, Layout: l}, "", "  ")
}

// Unmarshal deserializes a layout document. The tiling is verified again, so
// a hand-edited document cannot smuggle overlapping spaces into a sink.
func Unmarshal(data []byte) (Layout, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal layout")
	}
	if doc.Version > DocumentVersion {
		return Layout{}, errors.New(errors.ErrCodeUnsupported, "layout document version %d is newer than %d", doc.Version, DocumentVersion)
	}
	if doc.Plan == nil {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout document must contain a plan")
	}
	if err := validatePlan(doc.Plan); err != nil {
		return Layout{}, err
	}
	for _, d := range doc.Dimensions {
		if err := d.Validate(); err != nil {
			return Layout{}, err
		}
	}
	for _, lbl := range doc.Labels {
		if err := lbl.Validate(); err != nil {
			return Layout{}, err
		}
	}
	if want := doc.Plan.Stair.Spec.Treads - 1; len(doc.Treads) != want {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout has %d treads, stair declares %d", len(doc.Treads), want)
	}
	return doc.Layout, nil
}

func validatePlan(fp *plan.FloorPlan) error {
	for _, r := range fp.Rooms {
		if err := errors.ValidateID(r.Spec.ID); err != nil {
			return err
		}
		if err := errors.ValidateLabel("room name", r.Spec.Name); err != nil {
			return err
		}
	}
	if err := errors.ValidateLabel("building name", fp.Name); err != nil {
		return err
	}
	if err := errors.ValidateDistance("margin", float64(fp.Margin)); err != nil {
		return err
	}
	if err := errors.ValidateDistance("height", float64(fp.Height)); err != nil {
		return err
	}
	if err := errors.ValidateTreadCount(fp.Stair.Spec.Treads); err != nil {
		return err
	}
	return fp.Verify()
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
