package selection

import (
	"errors"
	"fmt"

	"github.com/matst80/diecast-finder/pkg/types"
)

var (
	ErrUnknownValue = errors.New("value is not an option of the facet")
	ErrUnknownFacet = types.ErrUnknownFacet
)

// OptionSource tells which values may be selected for a facet.
type OptionSource interface {
	HasOption(id types.FacetId, value string) bool
}

// State is the selection of one browsing session: a value per facet and an
// optional detail model. It has a single owner and is not safe for
// concurrent use.
type State struct {
	options   OptionSource
	selection types.Selection
	Detail    Detail
}

func NewState(options OptionSource) *State {
	return &State{
		options:   options,
		selection: types.NewSelection(),
	}
}

// Selection returns a copy of the current facet values.
func (s *State) Selection() types.Selection {
	return s.selection
}

func (s *State) check(id types.FacetId, value string) (string, error) {
	if _, ok := types.GetBaseField(id); !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownFacet, id)
	}
	if types.IsUnconstrained(value) {
		return types.AllValue, nil
	}
	if s.options != nil && !s.options.HasOption(id, value) {
		return "", fmt.Errorf("%w: %s=%q", ErrUnknownValue, id, value)
	}
	return value, nil
}

// SetFacet replaces the value of one facet. Unknown values are rejected and
// leave the state unchanged.
func (s *State) SetFacet(id types.FacetId, value string) error {
	v, err := s.check(id, value)
	if err != nil {
		return err
	}
	return s.selection.Set(id, v)
}

// SetFacetByKey is SetFacet for a facet addressed by its key.
func (s *State) SetFacetByKey(key string, value string) error {
	id, err := types.ParseFacet(key)
	if err != nil {
		return err
	}
	return s.SetFacet(id, value)
}

// Clear makes every facet unconstrained.
func (s *State) Clear() {
	s.selection = types.NewSelection()
}

// Replace sets all facets at once. Either every value is accepted or the
// state is left unchanged.
func (s *State) Replace(selection types.Selection) error {
	next := types.NewSelection()
	for _, f := range types.AllFacets {
		v, err := s.check(f.Id, selection.Get(f.Id))
		if err != nil {
			return err
		}
		_ = next.Set(f.Id, v)
	}
	s.selection = next
	return nil
}
