package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/sourcemap/errors"
)

func press(m *browseModel, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestBrowse_Navigate(t *testing.T) {
	m := newBrowseModel()

	press(m, keyUp)
	if m.selected != 0 {
		t.Errorf("selected = %d after up at top", m.selected)
	}

	for i := 0; i < len(m.kinds)+3; i++ {
		press(m, keyDown)
	}
	if m.selected != len(m.kinds)-1 {
		t.Errorf("selected = %d, want %d", m.selected, len(m.kinds)-1)
	}
}

func TestBrowse_RenderWithoutReason(t *testing.T) {
	m := newBrowseModel()
	press(m, keyDown, keyDown, keyEnter)
	if m.state != stateInputReason {
		t.Fatalf("state = %v, want input", m.state)
	}

	press(m, keyEnter)
	if m.state != stateShowMessage {
		t.Fatalf("state = %v, want message", m.state)
	}
	if m.message != "[parcel-sourcemap] VLQ Unexpected end of file" {
		t.Errorf("message = %q", m.message)
	}
	if !strings.Contains(m.View(), "VLQ Unexpected end of file") {
		t.Error("view should show the rendered message")
	}
}

func TestBrowse_RenderWithReason(t *testing.T) {
	m := newBrowseModel()
	for m.kinds[m.selected] != errors.KindSourceOutOfRange {
		press(m, keyDown)
	}
	press(m, keyEnter)
	m.input.SetValue("index 42 >= 10 sources")
	press(m, keyEnter)

	if m.message != "[parcel-sourcemap] Source out of range, index 42 >= 10 sources" {
		t.Errorf("message = %q", m.message)
	}

	press(m, keyEnter)
	if m.state != stateSelectKind || m.message != "" {
		t.Errorf("enter should return to selection, state = %v", m.state)
	}
}

func TestBrowse_Escape(t *testing.T) {
	m := newBrowseModel()
	press(m, keyEnter, keyEsc)
	if m.state != stateSelectKind {
		t.Errorf("state = %v, want select", m.state)
	}
}

func TestBrowse_Quit(t *testing.T) {
	m := newBrowseModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit from the selection list")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}

	press(m, keyEnter)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.state != stateInputReason {
		t.Errorf("state = %v, q should not leave the reason input", m.state)
	}
	if m.input.Value() != "q" {
		t.Errorf("input = %q, want q", m.input.Value())
	}
}

func TestBrowse_EmptyReasonToggle(t *testing.T) {
	m := newBrowseModel()
	for m.kinds[m.selected] != errors.KindIO {
		press(m, keyDown)
	}
	press(m, keyEnter, tea.KeyMsg{Type: tea.KeyTab}, keyEnter)

	if m.message != "[parcel-sourcemap] IO Error, " {
		t.Errorf("message = %q, want empty reason rendered", m.message)
	}

	// The toggle resets for the next kind.
	press(m, keyEnter, keyEnter, keyEnter)
	if m.message != "[parcel-sourcemap] IO Error" {
		t.Errorf("message = %q, want no reason", m.message)
	}
}
