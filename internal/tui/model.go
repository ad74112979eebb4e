package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mvillan/patterndrill/internal/cli/formatter"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
	"github.com/mvillan/patterndrill/internal/service"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPart key.Binding
	PrevPart key.Binding
	Toggle   key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPart: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next part")),
		PrevPart: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev part")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPart, k.Toggle, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPart, k.PrevPart},
		{k.Toggle, k.Quit, k.Help},
	}
}

type rowKind int

const (
	rowSection rowKind = iota
	rowSubcategory
	rowQuestion
	rowTopic
)

// row is one rendered line of the checklist. Only question rows toggle.
type row struct {
	kind        rowKind
	text        string
	recommended bool
}

// toggledMsg carries the store's answer to a toggle request.
type toggledMsg struct {
	title     string
	completed bool
	m         domain.CompletionMap
	err       error
}

// Model is the interactive checklist browser over the whole catalog.
type Model struct {
	catalog    *domain.Catalog
	reconciler *reconcile.Reconciler
	progress   service.ProgressService
	account    *domain.Account

	completion domain.CompletionMap
	partIdx    int
	cursor     int
	rows       []row

	keys   keyMap
	help   help.Model
	height int
	err    error
}

// New builds the browser over an already-loaded completion map.
func New(catalog *domain.Catalog, rec *reconcile.Reconciler, progress service.ProgressService, account *domain.Account, m domain.CompletionMap) Model {
	model := Model{
		catalog:    catalog,
		reconciler: rec,
		progress:   progress,
		account:    account,
		completion: m,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	model.rebuildRows()
	return model
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.completion = msg.m
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.NextPart):
			m.switchPart(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPart):
			m.switchPart(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggleCurrent()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.rows) {
			return
		}
		if m.rows[next].kind == rowQuestion {
			m.cursor = next
			return
		}
	}
}

func (m *Model) switchPart(delta int) {
	n := len(m.catalog.Parts)
	if n == 0 {
		return
	}
	m.partIdx = ((m.partIdx+delta)%n + n) % n
	m.rebuildRows()
}

func (m *Model) toggleCurrent() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	r := m.rows[m.cursor]
	if r.kind != rowQuestion {
		return nil
	}
	progress, accountID, title := m.progress, m.account.ID, r.text
	return func() tea.Msg {
		result, err := progress.Toggle(context.Background(), accountID, title)
		if err != nil {
			return toggledMsg{title: title, err: err}
		}
		return toggledMsg{title: result.Question, completed: result.Completed, m: result.CompletedQuestions}
	}
}

// rebuildRows flattens the current part into render rows and parks the
// cursor on its first question.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	m.cursor = 0
	if m.partIdx >= len(m.catalog.Parts) {
		return
	}
	part := &m.catalog.Parts[m.partIdx]
	isFilter := reconcile.IsFilterPart(part.Name)
	filter, hasFilter := reconcile.FilterForSource(part.Name)

	for i := range part.Sections {
		sec := &part.Sections[i]
		m.rows = append(m.rows, row{kind: rowSection, text: sec.Name})
		for _, q := range sec.Questions {
			m.rows = append(m.rows, row{kind: rowQuestion, text: q})
		}
		for j := range sec.Subcategories {
			sub := &sec.Subcategories[j]
			recommended := hasFilter && m.reconciler.IsRecommended(filter, sec.Name, sub.Name)
			m.rows = append(m.rows, row{kind: rowSubcategory, text: sub.Name, recommended: recommended})
			kind := rowQuestion
			if isFilter {
				kind = rowTopic
			}
			for _, q := range sub.Questions {
				m.rows = append(m.rows, row{kind: kind, text: q})
			}
		}
	}

	if len(m.rows) > 0 && m.rows[0].kind != rowQuestion {
		m.moveCursor(1)
	}
}

func (m Model) View() string {
	if len(m.catalog.Parts) == 0 {
		return "empty catalog\n"
	}
	part := &m.catalog.Parts[m.partIdx]

	var b strings.Builder
	b.WriteString(formatter.Header(part.Name))
	b.WriteString("\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// visibleRange keeps the cursor inside the window when the terminal is
// shorter than the part.
func (m Model) visibleRange() (int, int) {
	if m.height == 0 {
		return 0, len(m.rows)
	}
	budget := m.height - 5
	if budget < 1 || budget >= len(m.rows) {
		return 0, len(m.rows)
	}
	start := m.cursor - budget/2
	if start < 0 {
		start = 0
	}
	end := start + budget
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - budget
	}
	return start, end
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	switch r.kind {
	case rowSection:
		return formatter.Bold(r.text)
	case rowSubcategory:
		label := "  " + formatter.StyleBlue.Render(r.text)
		if r.recommended {
			label += "  " + formatter.RecommendedBadge()
		}
		return label
	case rowTopic:
		return "      • " + r.text
	default:
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		return fmt.Sprintf("    %s%s %s", cursor, formatter.Checkbox(m.completion.Completed(r.text)), r.text)
	}
}
