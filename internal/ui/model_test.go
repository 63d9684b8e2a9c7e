package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftlab/internal/session"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func testParams() session.Params {
	return session.Params{N: 10, Seed: 1234, P00: 0.5, P01: 0.4, P11: 0.1}
}

func TestModel_InitializeKey(t *testing.T) {
	m := New(testParams(), nil, nil)
	require.False(t, m.Session().Initialized())

	m = press(t, m, "i")
	assert.True(t, m.Session().Initialized())
	assert.Equal(t, 0, m.Session().Generation())
	assert.Len(t, m.Session().Replicates(), session.DefaultReplicates)
}

func TestModel_AdvanceKeys(t *testing.T) {
	m := press(t, New(testParams(), nil, nil), "i", "n")
	assert.Equal(t, 10, m.Session().Generation())

	m = press(t, m, " ")
	assert.Equal(t, 20, m.Session().Generation())
}

func TestModel_AdvanceBeforeInitialize(t *testing.T) {
	m := press(t, New(testParams(), nil, nil), "n")
	assert.False(t, m.Session().Initialized())
	assert.Contains(t, m.View(), "advance failed")
}

func TestModel_EditParams(t *testing.T) {
	m := New(testParams(), nil, nil)
	m = press(t, m, "p")

	m.input.SetValue("20 7 0.25 0.25 0.5")
	m = press(t, m, "enter")

	m = press(t, m, "i")
	require.True(t, m.Session().Initialized())
	assert.Equal(t, 20, m.Session().Params().N)
	assert.Equal(t, uint64(7), m.Session().Params().Seed)
}

func TestModel_EditRejectsInvalid(t *testing.T) {
	m := press(t, New(testParams(), nil, nil), "p")

	m.input.SetValue("10 1 0.8 0.8 0")
	m = press(t, m, "enter")
	assert.Contains(t, m.View(), "bad parameters")

	// Still in edit mode; esc returns to the panel with params unchanged.
	m = press(t, m, "esc", "i")
	assert.Equal(t, 10, m.Session().Params().N)
}

func TestModel_QuitKey(t *testing.T) {
	m := New(testParams(), nil, nil)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsTraces(t *testing.T) {
	m := press(t, New(testParams(), nil, nil), "i", "n")

	view := m.View()
	assert.Contains(t, view, "generation")
	assert.Contains(t, view, "rep_1")
	assert.Contains(t, view, "rep_10")
}
