package domain

import "sort"

// TaskSet is an unordered, deduplicated set of task identifiers.
// It is only ever used as a membership filter.
type TaskSet map[string]struct{}

// NewTaskSet builds a TaskSet from the given identifiers, ignoring empty strings
func NewTaskSet(ids ...string) TaskSet {
	ts := make(TaskSet, len(ids))
	for _, id := range ids {
		ts.Add(id)
	}
	return ts
}

// Add inserts an identifier into the set
func (ts TaskSet) Add(id string) {
	if id == "" {
		return
	}
	ts[id] = struct{}{}
}

// Merge adds every identifier of other into the set
func (ts TaskSet) Merge(other TaskSet) {
	for id := range other {
		ts[id] = struct{}{}
	}
}

// Contains reports whether id is a member of the set
func (ts TaskSet) Contains(id string) bool {
	_, ok := ts[id]
	return ok
}

// Len returns the number of identifiers in the set
func (ts TaskSet) Len() int {
	return len(ts)
}

// Sorted returns the identifiers in lexical order, for display and stable queries
func (ts TaskSet) Sorted() []string {
	ids := make([]string, 0, len(ts))
	for id := range ts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
