package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, s SourceSelector, msg tea.KeyMsg) (SourceSelector, tea.Cmd) {
	model, cmd := s.Update(msg)
	selector, ok := model.(SourceSelector)
	require.True(t, ok)
	return selector, cmd
}

func TestSourceSelector_Typing(t *testing.T) {
	selector := CreateSourceSelector("")
	assert.Equal(t, SourceStateBlank, selector.state)

	selector, _ = press(t, selector, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	selector, _ = press(t, selector, tea.KeyMsg{Type: tea.KeySpace})
	selector, _ = press(t, selector, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Equal(t, "ab c", selector.input)

	selector, _ = press(t, selector, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab ", selector.input)
}

func TestSourceSelector_CheckPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Language/>"), 0644))

	selector := CreateSourceSelector("")
	selector.input = path
	selector, cmd := press(t, selector, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SourceStateFound, selector.state)
	assert.Nil(t, cmd)

	// second Enter confirms and quits
	selector, cmd = press(t, selector, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, selector.confirmed)
	assert.NotNil(t, cmd)
}

func TestSourceSelector_MissingPath(t *testing.T) {
	selector := CreateSourceSelector(filepath.Join(t.TempDir(), "nonexistent.xml"))
	assert.Equal(t, SourceStateBlank, selector.state)

	selector, cmd := press(t, selector, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SourceStateMissing, selector.state)
	assert.Nil(t, cmd)
	assert.False(t, selector.confirmed)

	// editing clears the verdict
	selector, _ = press(t, selector, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, SourceStateBlank, selector.state)
}

func TestSourceSelector_Quit(t *testing.T) {
	selector := CreateSourceSelector("")
	selector, cmd := press(t, selector, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.False(t, selector.confirmed)
	assert.NotNil(t, cmd)
}

func TestSourceSelector_ExistingInitialPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Language/>"), 0644))

	selector := CreateSourceSelector(path)
	assert.Equal(t, SourceStateFound, selector.state)
	assert.Contains(t, selector.View(), "Found it")
}

func TestCheckSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Language/>"), 0644))

	assert.True(t, CheckSource(path))
	assert.False(t, CheckSource(dir))
	assert.False(t, CheckSource(filepath.Join(dir, "nonexistent.xml")))
}
