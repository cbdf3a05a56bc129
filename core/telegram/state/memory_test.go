package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryManagerDefaults(t *testing.T) {
	m := NewMemoryManager()

	sess := m.Get(42)
	require.Equal(t, StateIdle, sess.State)
	require.Empty(t, sess.TempData)

	require.Equal(t, StateIdle, m.GetState(42))
	require.False(t, m.InProgress(42))
}

func TestMemoryManagerStateTransitions(t *testing.T) {
	m := NewMemoryManager()
	const step = State("awaiting_amount")

	m.SetState(42, step)
	require.Equal(t, step, m.GetState(42))
	require.True(t, m.HasState(42))
	require.True(t, m.InProgress(42))

	// Other users are unaffected.
	require.False(t, m.InProgress(7))

	m.ClearState(42)
	require.Equal(t, StateIdle, m.GetState(42))
	require.False(t, m.InProgress(42))
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	_, ok := m.GetTemp(42, "category")
	require.False(t, ok)

	m.SetTemp(42, "category", "food")
	val, ok := m.GetTemp(42, "category")
	require.True(t, ok)
	require.Equal(t, "food", val)

	m.SetTemp(42, "amount_minor", int64(12050))
	n, ok := m.GetTempInt64(42, "amount_minor")
	require.True(t, ok)
	require.Equal(t, int64(12050), n)

	// Wrong type does not satisfy the int64 accessor.
	_, ok = m.GetTempInt64(42, "category")
	require.False(t, ok)

	m.ClearTemp(42, "category")
	_, ok = m.GetTemp(42, "category")
	require.False(t, ok)
}

func TestMemoryManagerClearDropsSession(t *testing.T) {
	m := NewMemoryManager()

	m.SetState(42, State("awaiting_date"))
	m.SetTemp(42, "category", "food")

	m.Clear(42)
	require.Equal(t, StateIdle, m.GetState(42))
	_, ok := m.GetTemp(42, "category")
	require.False(t, ok)
}
