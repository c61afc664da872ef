package pairing

// DeltaTable is the table of mirror differences (mirror − code-point).
// Slot 0 is reserved for difference 0, meaning "no mirror". Other
// differences are appended in order of first appearance and stored once.
type DeltaTable struct {
	deltas []int16
}

// NewDeltaTable creates a table holding just the reserved slot 0.
func NewDeltaTable() *DeltaTable {
	deltas := make([]int16, 1, 32)
	return &DeltaTable{deltas: deltas}
}

// Intern returns the index of delta, appending it if it is not yet present.
func (dt *DeltaTable) Intern(delta int16) int {
	if delta == 0 {
		return 0
	}
	for i, d := range dt.deltas {
		if d == delta {
			return i
		}
	}
	dt.deltas = append(dt.deltas, delta)
	return len(dt.deltas) - 1
}

// Len is the number of entries, including the reserved slot.
func (dt *DeltaTable) Len() int {
	return len(dt.deltas)
}

// At returns the difference at index i.
func (dt *DeltaTable) At(i int) int16 {
	return dt.deltas[i]
}

// Deltas returns a copy of the table in insertion order.
func (dt *DeltaTable) Deltas() []int16 {
	d := make([]int16, len(dt.deltas))
	copy(d, dt.deltas)
	return d
}
