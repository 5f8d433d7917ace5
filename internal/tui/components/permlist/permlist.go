package permlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type AddPermissionMsg struct{}

type EditPermissionMsg struct {
	Entry models.PermissionEntry
}

type DeletePermissionMsg struct {
	Entry models.PermissionEntry
}

type Item struct {
	Entry models.PermissionEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s (%sh)",
		i.Entry.Date,
		constants.PermissionTypeLabel(constants.PermissionType(i.Entry.Activity)),
		session.DisplayHours(i.Entry.Hours))
}

func (i Item) Description() string {
	status := i.Entry.Status
	if status == "" {
		status = "PENDIENTE"
	}
	desc := status
	if i.Entry.Note != "" {
		desc += " | " + i.Entry.Note
	}
	if i.Entry.Response != "" {
		desc += " | " + i.Entry.Response
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.Entry.Date + " " + i.Entry.Activity
}

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "request"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "withdraw"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.PermissionEntry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.PermissionEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddPermissionMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditPermissionMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeletePermissionMsg(i) }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No permission requests.\n  Press 'a' to request one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
