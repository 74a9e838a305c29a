package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() []Option {
	return []Option{
		{ID: 1, Label: "#1 | f=100-200 | FM | p=5"},
		{ID: 2, Label: "#2 | f=300-400 | AM | p=2"},
		{ID: 3, Label: "#3 | f=500-600 | FM | p=7"},
	}
}

func TestNew_PreChecksOnlyKnownIDs(t *testing.T) {
	m := New(testOptions(), []int64{2, 3, 99})

	assert.Equal(t, []int64{2, 3}, m.CheckedIDs())
	assert.False(t, m.Checked(99))
	assert.Equal(t, "2 selected", m.SummaryText())
}

func TestToggle(t *testing.T) {
	m := New(testOptions(), nil)

	assert.Equal(t, "Select signals", m.SummaryText())

	require.True(t, m.Toggle(1))
	require.True(t, m.Toggle(3))
	assert.Equal(t, []int64{1, 3}, m.CheckedIDs())

	// Toggling off removes from the set
	require.True(t, m.Toggle(1))
	assert.Equal(t, []int64{3}, m.CheckedIDs())

	// Unknown ids are rejected
	assert.False(t, m.Toggle(42))
	assert.Equal(t, []int64{3}, m.CheckedIDs())
}

func TestCheckedIDs_OrderedByOptionOrder(t *testing.T) {
	m := New(testOptions(), nil)

	// Checked in reverse order, returned in option order
	require.True(t, m.Toggle(3))
	require.True(t, m.Toggle(1))
	assert.Equal(t, []int64{1, 3}, m.CheckedIDs())
}

func TestFilter_HidesButNeverUnchecks(t *testing.T) {
	m := New(testOptions(), []int64{2})

	m.SetSearch("fm")
	visible := m.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, int64(3), visible[1].ID)

	// Option 2 is hidden but stays checked
	assert.True(t, m.Checked(2))
	assert.Equal(t, []int64{2}, m.CheckedIDs())

	// Toggling a hidden option still works
	require.True(t, m.Toggle(2))
	assert.Empty(t, m.CheckedIDs())

	// Clearing the filter restores full visibility
	m.SetSearch("")
	assert.Len(t, m.Visible(), 3)
}

func TestFilter_IsCaseInsensitive(t *testing.T) {
	m := New(testOptions(), nil)

	m.SetSearch("AM")
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, int64(2), m.Visible()[0].ID)
}

func TestRegistry_AttachIsIdempotent(t *testing.T) {
	r := NewRegistry()
	m := New(testOptions(), nil)

	assert.True(t, r.Attach(m))
	require.True(t, m.Toggle(1))
	m.SetSearch("fm")
	m.Open()

	// Re-attaching the same live instance must not disturb its state
	assert.False(t, r.Attach(m))
	assert.True(t, r.Attached(m))
	assert.Equal(t, []int64{1}, m.CheckedIDs())
	assert.Equal(t, "fm", m.Search())
	assert.True(t, m.IsOpen())
}

func TestRegistry_OpenOnlyDismissesOthers(t *testing.T) {
	r := NewRegistry()
	a := New(testOptions(), nil)
	b := New(testOptions(), []int64{2})
	c := New(testOptions(), nil)
	r.Attach(a)
	r.Attach(b)
	r.Attach(c)

	r.OpenOnly(a)
	assert.True(t, a.IsOpen())

	r.OpenOnly(b)
	assert.False(t, a.IsOpen())
	assert.True(t, b.IsOpen())
	assert.False(t, c.IsOpen())

	// Dismissing never touches checked state
	r.DismissAll()
	assert.False(t, b.IsOpen())
	assert.Equal(t, []int64{2}, b.CheckedIDs())
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	m := New(testOptions(), nil)
	r.Attach(m)

	r.Reset()
	assert.False(t, r.Attached(m))

	// A fresh render attaches anew
	assert.True(t, r.Attach(m))
}
