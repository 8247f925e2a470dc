package models

// Inventory is the shared stock dataset: part identifier to quantity on
// hand. Entries carry no per-key timestamp, which is why the merge policy
// for this dataset is whole-map replace-by-latest-pull (see the sync
// service) rather than per-entry last-writer-wins.
type Inventory map[string]int64

// Clone returns a shallow copy so callers can mutate the result without
// touching the cached snapshot.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}
