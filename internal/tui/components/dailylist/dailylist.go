package dailylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ib-ingenieria/horas-cli/internal/models"
	"github.com/ib-ingenieria/horas-cli/internal/session"
)

type AddEntryMsg struct{}

type EditEntryMsg struct {
	Entry models.DailyEntry
}

type DeleteEntryMsg struct {
	Entry models.DailyEntry
}

type UndoDeleteMsg struct{}

type Item struct {
	Entry models.DailyEntry
}

func (i Item) Title() string {
	project := i.Entry.ProjectName
	if project == "" {
		project = i.Entry.ProjectCode
	}
	return fmt.Sprintf("%sh  %s", session.DisplayHours(i.Entry.Hours), project)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s | %s", i.Entry.Phase, i.Entry.Discipline, i.Entry.Activity)
	if i.Entry.Note != "" {
		desc += " | " + i.Entry.Note
	}
	return desc
}

func (i Item) FilterValue() string {
	return i.Entry.ProjectCode + " " + i.Entry.Activity
}

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Undo   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.DailyEntry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Undo}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Undo}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.DailyEntry) {
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
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg(i) }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg(i) }
			}
		case key.Matches(msg, m.keys.Undo):
			return m, func() tea.Msg { return UndoDeleteMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No hours recorded for this day.\n  Press 'a' to add an entry."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
