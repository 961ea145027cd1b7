// Package tui is the terminal front end of Stockroom: a main screen that
// collects input and calls the item store, and a view screen that renders
// the inventory as a two-column table.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/stockroom/internal/inventory"
)

// Screen names the visible screen. There are exactly two, with no history.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenView
)

func (s Screen) String() string {
	if s == ScreenView {
		return "view"
	}
	return "main"
}

// Input field indexes on the main screen, in focus order.
const (
	fieldName = iota
	fieldQuantity
	fieldNewQuantity
	fieldSearch
	fieldCount
)

const searchPrompt = "Search Result: "

// Model is the bubbletea model for the whole program.
type Model struct {
	store  *inventory.Store
	title  string
	screen Screen

	inputs []textinput.Model
	focus  int

	searchResult string
	errMsg       string

	table  table.Model
	width  int
	height int
}

// NewModel returns a Model on the main screen with the name field focused.
func NewModel(store *inventory.Store, title string) Model {
	placeholders := [fieldCount]string{
		"Item Name",
		"Item Quantity",
		"New Quantity (For Update)",
		"Search Item",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = "› "
		ti.CharLimit = 256
		ti.Width = 40
		ti.PromptStyle = lipgloss.NewStyle().Foreground(Green)
		ti.TextStyle = lipgloss.NewStyle().Foreground(BrightGreen)
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Item Name", Width: 32},
			{Title: "Quantity", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Cell = TableCellStyle
	styles.Selected = TableSelectedStyle
	t.SetStyles(styles)

	return Model{
		store:        store,
		title:        title,
		screen:       ScreenMain,
		inputs:       inputs,
		focus:        fieldName,
		searchResult: searchPrompt,
		table:        t,
	}
}

// Run starts the program and blocks until the user quits.
func Run(store *inventory.Store, title string) error {
	p := tea.NewProgram(NewModel(store, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Screen returns the visible screen.
func (m Model) Screen() Screen {
	return m.screen
}

// ShowView switches to the view screen, rebuilding the table from the store.
func (m *Model) ShowView() {
	m.table.SetRows(m.rows())
	m.table.GotoTop()
	m.screen = ScreenView
}

// ShowMain switches back to the main screen.
func (m *Model) ShowMain() {
	m.screen = ScreenMain
}

func (m Model) rows() []table.Row {
	var rows []table.Row
	for name, qty := range m.store.List() {
		rows = append(rows, table.Row{name, strconv.Itoa(qty)})
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 6; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == ScreenView {
			return m.updateView(msg)
		}
		return m.updateMain(msg)
	}

	if m.screen == ScreenMain {
		return m.forwardToInput(msg)
	}
	return m, nil
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.ShowMain()
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "ctrl+a":
		m.addItem()
		return m, nil
	case "ctrl+r":
		m.removeItem()
		return m, nil
	case "ctrl+u":
		m.updateItemQuantity()
		return m, nil
	case "ctrl+f":
		m.searchItem()
		return m, nil
	case "ctrl+l":
		m.ShowView()
		return m, nil
	case "enter":
		if m.focus == fieldSearch {
			m.searchItem()
			return m, nil
		}
		return m, m.setFocus((m.focus + 1) % fieldCount)
	}
	return m.forwardToInput(msg)
}

func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// addItem adds the quantity field to the name field. Invalid input does
// nothing; the fields are cleared only when the item was stored.
func (m *Model) addItem() {
	m.errMsg = ""
	res, err := m.store.AddOrIncrement(m.inputs[fieldName].Value(), m.inputs[fieldQuantity].Value())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if res.Applied {
		m.inputs[fieldName].Reset()
		m.inputs[fieldQuantity].Reset()
	}
}

func (m *Model) removeItem() {
	m.errMsg = ""
	removed, err := m.store.Remove(m.inputs[fieldName].Value())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if removed {
		m.inputs[fieldName].Reset()
	}
}

// updateItemQuantity overwrites the quantity. Rejected input is reported to
// the diagnostic log by the store and is not shown here.
func (m *Model) updateItemQuantity() {
	m.errMsg = ""
	err := m.store.UpdateQuantity(m.inputs[fieldName].Value(), m.inputs[fieldNewQuantity].Value())
	if err != nil {
		if !inventory.IsValidationError(err) {
			m.errMsg = err.Error()
		}
		return
	}
	m.inputs[fieldNewQuantity].Reset()
}

func (m *Model) searchItem() {
	m.searchResult = m.store.Search(m.inputs[fieldSearch].Value()).String()
}

func (m Model) View() string {
	if m.screen == ScreenView {
		return m.viewItems()
	}
	return m.viewMain()
}

func (m Model) viewMain() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title) + "\n\n")

	for i, in := range m.inputs {
		style := InputBorderStyle
		if i == m.focus {
			style = InputActiveStyle
		}
		b.WriteString(style.Render(in.View()) + "\n")
		if i == fieldNewQuantity {
			b.WriteString("\n")
		}
	}

	b.WriteString(SearchResultStyle.Render(m.searchResult) + "\n")
	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render("ctrl+a add • ctrl+r remove • ctrl+u update • ctrl+f search • ctrl+l view items • tab next field • esc quit"))
	return b.String()
}

func (m Model) viewItems() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title) + "\n\n")
	b.WriteString(m.table.View() + "\n")
	b.WriteString(HelpStyle.Render("↑/↓ scroll • esc back to main screen"))
	return b.String()
}
