package metadata

import "strconv"

// IDAssigner stamps hierarchical element ids onto dashboard rows. Every row
// belonging to the same (module, dashboard) pair receives the same id; ids
// count up from 1 in first-seen order of the input sequence. Each pipeline
// run owns a fresh assigner, so ids are stable for a given row order and
// never leak across runs.
type IDAssigner struct {
	seen map[string]int
	next int
}

// NewIDAssigner returns an assigner with an empty key map.
func NewIDAssigner() *IDAssigner {
	return &IDAssigner{seen: make(map[string]int), next: 1}
}

// Assign returns a copy of rows with ElementID populated. The input is not
// modified.
func (a *IDAssigner) Assign(rows []DashboardRow) []DashboardRow {
	out := make([]DashboardRow, len(rows))
	copy(out, rows)
	for i := range out {
		key := out[i].Module + "|" + out[i].Dashboard
		id, ok := a.seen[key]
		if !ok {
			id = a.next
			a.seen[key] = id
			a.next++
		}
		out[i].ElementID = strconv.Itoa(id)
	}
	return out
}
