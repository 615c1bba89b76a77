package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/powerauction/auction"
	"github.com/lox/powerauction/internal/randutil"
)

func editorConfig() *auction.Config {
	return &auction.Config{
		Powers:          []string{"North", "South", "East", "West"},
		Boards:          1,
		MinBid:          0,
		MaxBid:          20,
		MaxTotal:        40,
		NoIdenticalBids: true,
	}
}

func TestEditorStartsCleared(t *testing.T) {
	cfg := editorConfig()
	editor := NewEditor(cfg.NewBidSet(), randutil.New(1))

	view := editor.View()
	for _, power := range cfg.Powers {
		assert.Contains(t, view, power)
	}
	assert.Contains(t, view, "Total: 0 / 40")
}

func TestEditorTypingUpdatesTotalAndViolations(t *testing.T) {
	cfg := editorConfig()
	bids := cfg.NewBidSet()
	editor := NewEditor(bids, randutil.New(1))

	for _, r := range "25" {
		model, _ := editor.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		editor = model.(*Editor)
	}

	assert.Equal(t, 25, bids.Total())
	view := editor.View()
	assert.Contains(t, view, "Total: 25 / 40")
	assert.Contains(t, view, "North is above the maximum (20).")
}

func TestEditorRandomShortcutFillsLegalBids(t *testing.T) {
	cfg := editorConfig()
	bids := cfg.NewBidSet()
	editor := NewEditor(bids, randutil.New(7))

	model, _ := editor.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	editor = model.(*Editor)

	require.True(t, bids.Validate(), "messages: %v", bids.Messages())
	assert.Contains(t, editor.View(), "Bids are legal.")
}

func TestEditorAcceptOnLastField(t *testing.T) {
	cfg := editorConfig()
	editor := NewEditor(cfg.NewBidSet(), randutil.New(1))

	for i := 0; i < len(cfg.Powers)-1; i++ {
		model, _ := editor.Update(tea.KeyMsg{Type: tea.KeyTab})
		editor = model.(*Editor)
	}
	model, _ := editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	editor = model.(*Editor)

	assert.True(t, editor.Accepted)
}

func TestEditorEscapeDoesNotAccept(t *testing.T) {
	cfg := editorConfig()
	editor := NewEditor(cfg.NewBidSet(), randutil.New(1))

	model, _ := editor.Update(tea.KeyMsg{Type: tea.KeyEsc})
	editor = model.(*Editor)

	assert.False(t, editor.Accepted)
}
