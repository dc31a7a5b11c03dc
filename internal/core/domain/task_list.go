package domain

import "slices"

// TaskList is an ordered list of distinct task names.
type TaskList struct {
	names []string
}

// Add appends name unless it is already present.
func (l *TaskList) Add(names ...string) *TaskList {
	for _, name := range names {
		if name == "" || slices.Contains(l.names, name) {
			continue
		}
		l.names = append(l.names, name)
	}
	return l
}

// Contains reports whether name is in the list.
func (l *TaskList) Contains(name string) bool {
	return slices.Contains(l.names, name)
}

// List returns a copy of the names in insertion order.
func (l *TaskList) List() []string {
	return slices.Clone(l.names)
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.names)
}
