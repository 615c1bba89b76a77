// Package tui provides an interactive terminal editor for entering a
// round's bids: one field per power, with the running total and the
// rule violations updating as the player types.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/powerauction/auction"
)

// Editor is the Bubble Tea model for the bid entry form.
type Editor struct {
	bids *auction.BidSet
	rng  *rand.Rand

	inputs  []textinput.Model
	focused int

	// Accepted reports whether the player confirmed the bid set rather
	// than quitting out of the editor.
	Accepted bool

	quitting bool
	width    int
}

// NewEditor builds an editor over an existing bid set. The current bid
// values seed the input fields, so generated bids can be reviewed and
// touched up by hand.
func NewEditor(bids *auction.BidSet, rng *rand.Rand) *Editor {
	powers := bids.Config().Powers
	inputs := make([]textinput.Model, len(powers))
	for i, power := range powers {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 6
		ti.Width = 6
		ti.Placeholder = "0"
		if bid, ok := bids.Bid(power); ok {
			ti.SetValue(bid.String())
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	e := &Editor{
		bids:   bids,
		rng:    rng,
		inputs: inputs,
	}
	e.syncBids()
	return e
}

// Init implements tea.Model.
func (e *Editor) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			e.quitting = true
			return e, tea.Quit

		case "enter":
			if e.focused == len(e.inputs)-1 {
				e.syncBids()
				e.Accepted = true
				e.quitting = true
				return e, tea.Quit
			}
			e.setFocus(e.focused + 1)
			return e, nil

		case "tab", "down":
			e.setFocus((e.focused + 1) % len(e.inputs))
			return e, nil

		case "shift+tab", "up":
			e.setFocus((e.focused - 1 + len(e.inputs)) % len(e.inputs))
			return e, nil

		case "ctrl+r":
			if err := e.bids.MakeRandom(e.rng); err == nil {
				e.loadFromBids()
			}
			return e, nil

		case "ctrl+e":
			if err := e.bids.MakeEven(e.rng); err == nil {
				e.loadFromBids()
			}
			return e, nil

		case "ctrl+x":
			e.bids.Clear()
			e.loadFromBids()
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focused], cmd = e.inputs[e.focused].Update(msg)
	e.syncBids()
	return e, cmd
}

// View implements tea.Model.
func (e *Editor) View() string {
	if e.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" Power Auction — enter bids "))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, power := range e.bids.Config().Powers {
		if len(power) > nameWidth {
			nameWidth = len(power)
		}
	}
	for i, power := range e.bids.Config().Powers {
		cursor := "  "
		if i == e.focused {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			cursor,
			powerStyle.Render(fmt.Sprintf("%-*s", nameWidth, power)),
			e.inputs[i].View()))
	}

	cfg := e.bids.Config()
	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %d / %d", e.bids.Total(), cfg.MaxTotal)))
	b.WriteString("\n")

	if e.bids.Validate() {
		b.WriteString(validStyle.Render("Bids are legal."))
		b.WriteString("\n")
	} else {
		for _, msg := range e.bids.Messages() {
			b.WriteString(violationStyle.Render("• " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"tab/↑/↓ move · enter accept · ctrl+r random · ctrl+e even · ctrl+x clear · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// setFocus moves keyboard focus to input i.
func (e *Editor) setFocus(i int) {
	e.inputs[e.focused].Blur()
	e.focused = i
	e.inputs[e.focused].Focus()
}

// syncBids pushes the raw field contents into the bid set. Empty
// fields count as zero so an untouched form is a cleared bid set.
func (e *Editor) syncBids() {
	for i, power := range e.bids.Config().Powers {
		text := e.inputs[i].Value()
		if strings.TrimSpace(text) == "" {
			text = "0"
		}
		// Powers come from the bound config, so the name is known.
		_ = e.bids.SetText(power, text)
	}
}

// loadFromBids refreshes the field contents after a generator or Clear
// rewrote the bid set.
func (e *Editor) loadFromBids() {
	for i, power := range e.bids.Config().Powers {
		if bid, ok := e.bids.Bid(power); ok {
			e.inputs[i].SetValue(bid.String())
		}
	}
}

// Run drives the editor to completion and reports whether the player
// accepted the resulting bid set.
func Run(bids *auction.BidSet, rng *rand.Rand) (bool, error) {
	editor := NewEditor(bids, rng)
	if _, err := tea.NewProgram(editor).Run(); err != nil {
		return false, fmt.Errorf("bid editor failed: %w", err)
	}
	return editor.Accepted, nil
}
