package types

// ItemHandler receives the catalog once, in catalog order, while the index is built.
type ItemHandler interface {
	HandleItem(id ItemId, item *DiecastModel) error
}
