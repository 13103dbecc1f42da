package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/identicon/pkg/digest"
)

func press(m PreviewModel, msgs ...tea.KeyMsg) (PreviewModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(PreviewModel)
	}
	return m, cmd
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModelEmpty(t *testing.T) {
	m := NewPreviewModel("", digest.SHA256)
	assert.Nil(t, m.Icon)
	assert.NoError(t, m.Err)
	assert.Contains(t, m.View(), "start typing")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "enter without input should not quit")
	assert.Empty(t, m.Selected)
}

func TestPreviewModelTyping(t *testing.T) {
	m := NewPreviewModel("", digest.SHA256)

	m, _ = press(m, typeText("octo"), typeText("cat"))
	require.NotNil(t, m.Icon)
	assert.Equal(t, digest.Digest("a6658157f0df83900a6c8f"), m.Icon.Digest())

	view := m.View()
	assert.Contains(t, view, "octocat")
	assert.Contains(t, view, "#be605f")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "octoca", string(m.Input))
	require.NotNil(t, m.Icon)
	assert.NotEqual(t, digest.Digest("a6658157f0df83900a6c8f"), m.Icon.Digest())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, m.Input)
	assert.Nil(t, m.Icon)
}

func TestPreviewModelSpace(t *testing.T) {
	m := NewPreviewModel("john", digest.SHA256)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace}, typeText("doe"))
	assert.Equal(t, "john doe", string(m.Input))
}

func TestPreviewModelSelect(t *testing.T) {
	m := NewPreviewModel("octocat", digest.SHA256)
	require.NotNil(t, m.Icon)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "octocat", m.Selected)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPreviewModelQuit(t *testing.T) {
	m := NewPreviewModel("octocat", digest.SHA256)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.Selected)
}

func TestPreviewModelInvalidIdentifier(t *testing.T) {
	m := NewPreviewModel("bad\u0007id", digest.SHA256)
	assert.Nil(t, m.Icon)
	require.Error(t, m.Err)
	assert.Contains(t, m.View(), "control characters")
}

func TestPreviewModelBLAKE3(t *testing.T) {
	sha := NewPreviewModel("octocat", digest.SHA256)
	b3 := NewPreviewModel("octocat", digest.BLAKE3)
	require.NotNil(t, sha.Icon)
	require.NotNil(t, b3.Icon)
	assert.NotEqual(t, sha.Icon.Digest(), b3.Icon.Digest())
}
