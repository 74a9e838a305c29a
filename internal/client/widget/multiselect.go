// Package widget holds the transient UI state of the searchable signal
// picker. The state is always re-derivable from the current option list plus
// a record's reference set; it is never the source of truth for which
// signals belong to an asset.
package widget

import (
	"fmt"
	"strings"
)

// Option is one selectable entry of a multi-select widget.
type Option struct {
	ID    int64
	Label string
}

// MultiSelect is the state of one picker instance: open/closed flag, search
// text and the checked id set. Each option id appears exactly once, so the
// checked set cannot hold duplicates by construction.
type MultiSelect struct {
	options []Option
	checked map[int64]bool
	search  string
	open    bool
}

// New creates a picker over options with the given ids pre-checked. Ids not
// present in options are ignored.
func New(options []Option, selected []int64) *MultiSelect {
	m := &MultiSelect{
		options: options,
		checked: make(map[int64]bool, len(selected)),
	}
	known := make(map[int64]bool, len(options))
	for _, opt := range options {
		known[opt.ID] = true
	}
	for _, id := range selected {
		if known[id] {
			m.checked[id] = true
		}
	}
	return m
}

// Open marks the panel open.
func (m *MultiSelect) Open() { m.open = true }

// Close marks the panel closed. Search text and checks survive.
func (m *MultiSelect) Close() { m.open = false }

// IsOpen reports whether the panel is open.
func (m *MultiSelect) IsOpen() bool { return m.open }

// SetSearch replaces the search text.
func (m *MultiSelect) SetSearch(q string) { m.search = strings.TrimSpace(q) }

// Search returns the current search text.
func (m *MultiSelect) Search() string { return m.search }

// Visible returns the options matching the search text, in option order.
// Filtering affects visibility only: it never unchecks and never removes
// options.
func (m *MultiSelect) Visible() []Option {
	if m.search == "" {
		return m.options
	}
	q := strings.ToLower(m.search)
	var visible []Option
	for _, opt := range m.options {
		if strings.Contains(strings.ToLower(opt.Label), q) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// Toggle flips the checked state of the option with the given id; it
// reports false when no such option exists. Toggling works regardless of
// current filter visibility.
func (m *MultiSelect) Toggle(id int64) bool {
	for _, opt := range m.options {
		if opt.ID == id {
			if m.checked[id] {
				delete(m.checked, id)
			} else {
				m.checked[id] = true
			}
			return true
		}
	}
	return false
}

// Checked reports whether the option with the given id is checked.
func (m *MultiSelect) Checked(id int64) bool { return m.checked[id] }

// CheckedIDs returns the checked ids in option order. This is the value
// submitted as a record's reference set.
func (m *MultiSelect) CheckedIDs() []int64 {
	ids := make([]int64, 0, len(m.checked))
	for _, opt := range m.options {
		if m.checked[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// SummaryText renders the toggle-button label for the current checked set.
func (m *MultiSelect) SummaryText() string {
	n := len(m.checked)
	if n == 0 {
		return "Select signals"
	}
	return fmt.Sprintf("%d selected", n)
}

// Registry tracks which picker instances are wired, by identity. A refresh
// re-renders widgets and may invoke the attach routine again for an
// instance that is already live; the second attach must be a no-op.
type Registry struct {
	wired map[*MultiSelect]struct{}
}

// NewRegistry creates an empty widget registry.
func NewRegistry() *Registry {
	return &Registry{wired: make(map[*MultiSelect]struct{})}
}

// Attach wires a picker instance. It reports whether the instance was newly
// attached; attaching an already wired instance changes nothing.
func (r *Registry) Attach(m *MultiSelect) bool {
	if _, ok := r.wired[m]; ok {
		return false
	}
	r.wired[m] = struct{}{}
	return true
}

// Attached reports whether the instance is wired.
func (r *Registry) Attached(m *MultiSelect) bool {
	_, ok := r.wired[m]
	return ok
}

// OpenOnly opens the given instance and closes every other wired panel:
// interacting with one picker dismisses the rest, and instances never
// interfere with each other's checked state.
func (r *Registry) OpenOnly(m *MultiSelect) {
	for other := range r.wired {
		if other != m {
			other.Close()
		}
	}
	m.Open()
}

// DismissAll closes every wired panel (the outside-interaction rule).
func (r *Registry) DismissAll() {
	for m := range r.wired {
		m.Close()
	}
}

// Reset forgets all instances. Called when a full reload replaces the
// rendered widgets; stale instances are simply garbage afterwards.
func (r *Registry) Reset() {
	r.wired = make(map[*MultiSelect]struct{})
}
