package selection

import "github.com/matst80/diecast-finder/pkg/types"

// Detail references at most one catalog model opened for detail viewing.
type Detail struct {
	current *types.DiecastModel
}

// Open selects model, a nil model closes the detail.
func (d *Detail) Open(model *types.DiecastModel) {
	d.current = model
}

func (d *Detail) Close() {
	d.current = nil
}

func (d *Detail) Current() (*types.DiecastModel, bool) {
	return d.current, d.current != nil
}

func (d *Detail) IsOpen() bool {
	return d.current != nil
}
