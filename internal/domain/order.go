package domain

import "sort"

// OrderChronologically returns a copy of records sorted by CreatedAt, oldest
// first. Ties keep their input order. Task IDs play no part in the ordering.
func OrderChronologically(records []ChangeRecord) []ChangeRecord {
	ordered := make([]ChangeRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt < ordered[j].CreatedAt
	})
	return ordered
}
