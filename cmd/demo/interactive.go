package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/erasure/box"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// The inspector drives two wrappers: actions construct into and dispatch
// through the work wrapper, and the stash is the counterpart for moves,
// copies, and swaps.
type interactiveModel struct {
	err      error
	work     box.Any
	stash    box.Any
	actions  []actionInfo
	inputs   []textinput.Model
	result   string
	selected int
	focusIdx int
	state    modelState
}

type actionInfo struct {
	name   string
	params []paramInfo
	run    func(args []any) (string, error)
}

type paramInfo struct {
	name    string
	typeStr string
}

type modelState int

const (
	stateSelectAction modelState = iota
	stateInputArgs
	stateShowResult
)

type actionResultMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	m := &interactiveModel{
		work:  box.New(shape),
		stash: box.New(shape),
		state: stateSelectAction,
	}
	m.actions = m.buildActions()
	return m
}

func (m *interactiveModel) buildActions() []actionInfo {
	return []actionInfo{
		{
			name:   "new circle",
			params: []paramInfo{{name: "r", typeStr: "float64"}},
			run: func(args []any) (string, error) {
				if err := m.work.Set(circle{R: args[0].(float64)}); err != nil {
					return "", err
				}
				return "work wrapper holds a circle", nil
			},
		},
		{
			name: "new rect",
			params: []paramInfo{
				{name: "w", typeStr: "float64"},
				{name: "h", typeStr: "float64"},
			},
			run: func(args []any) (string, error) {
				if err := m.work.Set(rect{W: args[0].(float64), H: args[1].(float64)}); err != nil {
					return "", err
				}
				return "work wrapper holds a rect", nil
			},
		},
		{
			name:   "new grid",
			params: []paramInfo{{name: "fill", typeStr: "float64"}},
			run: func(args []any) (string, error) {
				var g grid
				for i := range g.Cells {
					g.Cells[i] = args[0].(float64)
				}
				if err := m.work.Set(g); err != nil {
					return "", err
				}
				return "work wrapper holds a grid", nil
			},
		},
		{
			name:   "new sensor",
			params: []paramInfo{{name: "reading", typeStr: "float64"}},
			run: func(args []any) (string, error) {
				if err := m.work.Set(sensor{Reading: args[0].(float64)}); err != nil {
					return "", err
				}
				return "work wrapper holds a pinned sensor", nil
			},
		},
		{
			name: "call area",
			run: func([]any) (string, error) {
				out, err := m.work.Call("area")
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("area = %v", out), nil
			},
		},
		{
			name:   "call scale-by",
			params: []paramInfo{{name: "factor", typeStr: "float64"}},
			run: func(args []any) (string, error) {
				if _, err := m.work.Call("scale-by", args[0]); err != nil {
					return "", err
				}
				return "payload scaled", nil
			},
		},
		{
			name: "inspect payload",
			run: func([]any) (string, error) {
				if m.work.Empty() {
					return "work wrapper is empty", nil
				}
				if c, ok := box.Cast[circle](&m.work); ok {
					return fmt.Sprintf("cast hit: circle %+v", *c), nil
				}
				if r, ok := box.Cast[rect](&m.work); ok {
					return fmt.Sprintf("cast hit: rect %+v", *r), nil
				}
				if s, ok := box.Cast[sensor](&m.work); ok {
					return fmt.Sprintf("cast hit: sensor %+v", *s), nil
				}
				if g, ok := box.Cast[grid](&m.work); ok {
					return fmt.Sprintf("cast hit: grid filled with %v", g.Cells[0]), nil
				}
				return fmt.Sprintf("no cast matched %s", m.work.Type().Name()), nil
			},
		},
		{
			name: "move to stash",
			run: func([]any) (string, error) {
				if err := m.stash.MoveFrom(&m.work); err != nil {
					return "", err
				}
				return "payload transferred; work wrapper is empty", nil
			},
		},
		{
			name: "copy to stash",
			run: func([]any) (string, error) {
				if err := m.stash.CopyFrom(&m.work); err != nil {
					return "", err
				}
				return "stash holds an independent copy", nil
			},
		},
		{
			name: "swap with stash",
			run: func([]any) (string, error) {
				m.work.Swap(&m.stash)
				return "payloads exchanged", nil
			},
		},
		{
			name: "reset work",
			run: func([]any) (string, error) {
				m.work.Reset()
				return "work wrapper emptied", nil
			},
		},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectAction && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAction && m.selected < len(m.actions)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectAction:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.runAction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runAction

			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectAction
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}
		}

	case actionResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	a := m.actions[m.selected]
	m.inputs = make([]textinput.Model, len(a.params))
	for i, p := range a.params {
		ti := textinput.New()
		ti.Placeholder = p.typeStr
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runAction() tea.Msg {
	a := m.actions[m.selected]
	args := make([]any, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = convertArg(input.Value(), a.params[i].typeStr)
	}

	// Contract violations surface as panics; the inspector reports them
	// like errors instead of tearing down the terminal.
	var (
		result string
		err    error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
		result, err = a.run(args)
	}()

	if err != nil {
		return actionResultMsg{err: err}
	}
	return actionResultMsg{result: result}
}

func convertArg(value, typeStr string) any {
	switch typeStr {
	case "float64":
		v, _ := strconv.ParseFloat(value, 64)
		return v
	case "int":
		v, _ := strconv.Atoi(value)
		return v
	case "bool":
		return value == "true" || value == "1"
	default:
		return value
	}
}

func wrapperStatus(a *box.Any) string {
	if a.Empty() {
		return "empty"
	}
	where := "heap"
	if a.InSitu() {
		where = "in place"
	}
	return fmt.Sprintf("%s (%s, %s)", a.Type().Name(), a.Interface().Name(), where)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Erasure Inspector"))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("work:  " + wrapperStatus(&m.work)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("stash: " + wrapperStatus(&m.stash)))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectAction:
		b.WriteString("Select an action:\n\n")
		for i, a := range m.actions {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatAction(a)))
			} else {
				b.WriteString(cursor + m.formatAction(a))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArgs:
		a := m.actions[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", actionStyle.Render(a.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(a.params[i].typeStr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		a := m.actions[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", actionStyle.Render(a.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatAction(a actionInfo) string {
	var params []string
	for _, p := range a.params {
		params = append(params, p.name+": "+typeStyle.Render(p.typeStr))
	}
	return actionStyle.Render(a.name) + "(" + strings.Join(params, ", ") + ")"
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
