package permlist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ib-ingenieria/horas-cli/internal/models"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestListKeysEmitMessages(t *testing.T) {
	entries := []models.PermissionEntry{
		{ID: "p1", Date: "2026-03-02", Activity: "PERMISO_MEDICO", Hours: 8, Note: "cita medica"},
		{ID: "p2", Date: "2026-03-03", Activity: "OTRO", Hours: 4, Note: "tramite personal"},
	}
	m := New(entries, 80, 24)

	t.Run("add", func(t *testing.T) {
		_, cmd := m.Update(keyMsg('a'))
		if cmd == nil {
			t.Fatal("'a' emitted no command")
		}
		if _, ok := cmd().(AddPermissionMsg); !ok {
			t.Fatalf("'a' emitted %T, want AddPermissionMsg", cmd())
		}
	})

	t.Run("edit selected", func(t *testing.T) {
		_, cmd := m.Update(keyMsg('e'))
		if cmd == nil {
			t.Fatal("'e' emitted no command")
		}
		msg, ok := cmd().(EditPermissionMsg)
		if !ok {
			t.Fatalf("'e' emitted %T, want EditPermissionMsg", cmd())
		}
		if msg.Entry.ID != "p1" {
			t.Errorf("edit targets %s, want the selected entry p1", msg.Entry.ID)
		}
	})

	t.Run("delete selected", func(t *testing.T) {
		_, cmd := m.Update(keyMsg('d'))
		if cmd == nil {
			t.Fatal("'d' emitted no command")
		}
		msg, ok := cmd().(DeletePermissionMsg)
		if !ok {
			t.Fatalf("'d' emitted %T, want DeletePermissionMsg", cmd())
		}
		if msg.Entry.ID != "p1" {
			t.Errorf("delete targets %s, want the selected entry p1", msg.Entry.ID)
		}
	})

	t.Run("edit with no entries", func(t *testing.T) {
		empty := New(nil, 80, 24)
		_, cmd := empty.Update(keyMsg('e'))
		if cmd != nil {
			if _, ok := cmd().(EditPermissionMsg); ok {
				t.Fatal("'e' on an empty list emitted EditPermissionMsg")
			}
		}
	})
}
