// internal/view/view.go
// Package: view
//
// Package view is the interactive browser for rendered figures. It renders
// in the background behind a spinner, then lists one entry per benchmark
// class; selecting a class shows its series as a table and 'o' opens the
// figure in the platform image viewer.
package view

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/jmhviz/internal/collect"
	"github.com/mwiater/jmhviz/internal/viz"
)

// viewState represents the current state of the browser.
type viewState int

const (
	viewRendering     viewState = iota // figures are being drawn
	viewChartSelector                  // list of benchmark classes
	viewSeries                         // table of one class's series
)

// item is one benchmark class in the chart list.
type item struct {
	title string
	desc  string
	index int
}

// Title returns the class name.
func (i item) Title() string { return i.title }

// Description returns the benchmark count and figure file.
func (i item) Description() string { return i.desc }

// FilterValue returns the class name, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

// renderDoneMsg is sent when the figures have been written.
type renderDoneMsg struct{ res *viz.Result }

// renderErr is sent when rendering fails.
type renderErr struct{ err error }

// openedMsg is sent after a figure was handed to the viewer.
type openedMsg string

// openErr is sent when the viewer could not be started.
type openErr struct{ err error }

// model is the bubbletea model of the browser.
type model struct {
	opts   viz.Options
	logger *slog.Logger
	run    func(viz.Options, *slog.Logger) (*viz.Result, error)
	open   func(path string) error

	state     viewState
	isLoading bool
	err       error
	res       *viz.Result
	selected  int
	status    string

	chartList   list.Model
	seriesTable table.Model
	spinner     spinner.Model

	width, height int
	startTime     time.Time
}

func initialModel(opts viz.Options, logger *slog.Logger) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	chartList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	chartList.Title = "Benchmark classes"

	return &model{
		opts:      opts,
		logger:    logger,
		run:       viz.Run,
		open:      openFile,
		state:     viewRendering,
		isLoading: true,
		spinner:   s,
		chartList: chartList,
		seriesTable: table.New(
			table.WithColumns(seriesColumns),
			table.WithFocused(true),
		),
		startTime: time.Now(),
	}
}

var seriesColumns = []table.Column{
	{Title: "Benchmark", Width: 28},
	{Title: "N", Width: 10},
	{Title: "Score", Width: 12},
	{Title: "CI low", Width: 12},
	{Title: "CI high", Width: 12},
	{Title: "Unit", Width: 8},
}

// renderCmd draws and writes every figure.
func renderCmd(run func(viz.Options, *slog.Logger) (*viz.Result, error), opts viz.Options, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		res, err := run(opts, logger)
		if err != nil {
			return renderErr{err: err}
		}
		return renderDoneMsg{res: res}
	}
}

// openCmd hands a figure file to the platform viewer.
func openCmd(open func(string) error, path string) tea.Cmd {
	return func() tea.Msg {
		if err := open(path); err != nil {
			return openErr{err: err}
		}
		return openedMsg(path)
	}
}

// Init starts the spinner and the rendering.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, renderCmd(m.run, m.opts, m.logger))
}

// Update handles incoming messages and moves between states.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		filtering := m.state == viewChartSelector && m.chartList.FilterState() == list.Filtering
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "esc", "tab":
			if m.state == viewSeries {
				m.state = viewChartSelector
				return m, nil
			}
		case "o":
			if filtering || m.res == nil || m.state == viewRendering {
				break
			}
			idx := m.selected
			if it, ok := m.chartList.SelectedItem().(item); ok && m.state == viewChartSelector {
				idx = it.index
			}
			if idx < len(m.res.Files) {
				return m, openCmd(m.open, m.res.Files[idx])
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.chartList.SetSize(msg.Width-2, msg.Height-4)
		m.seriesTable.SetWidth(msg.Width - 2)
		m.seriesTable.SetHeight(max(msg.Height-8, 3))

	case renderDoneMsg:
		m.isLoading = false
		m.res = msg.res
		m.chartList.SetItems(chartItems(msg.res))
		m.state = viewChartSelector
		return m, nil

	case renderErr:
		m.isLoading = false
		m.err = msg.err
		return m, nil

	case openedMsg:
		m.status = fmt.Sprintf("opened %s", string(msg))
		return m, nil

	case openErr:
		m.status = fmt.Sprintf("could not open figure: %v", msg.err)
		return m, nil
	}

	switch m.state {
	case viewChartSelector:
		// enter while typing a filter only applies the filter.
		wasFiltering := m.chartList.FilterState() == list.Filtering
		m.chartList, cmd = m.chartList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !wasFiltering {
			if it, ok := m.chartList.SelectedItem().(item); ok {
				m.selected = it.index
				m.seriesTable.SetRows(seriesRows(m.res.Series.Chart(it.index)))
				m.seriesTable.GotoTop()
				m.state = viewSeries
			}
		}

	case viewSeries:
		m.seriesTable, cmd = m.seriesTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func chartItems(res *viz.Result) []list.Item {
	items := make([]list.Item, len(res.Structure.Charts))
	for i, c := range res.Structure.Charts {
		desc := fmt.Sprintf("%d benchmarks · %dx%d grid", c.Count, c.Grid().Rows, c.Grid().Cols)
		if i < len(res.Files) {
			desc += " · " + res.Files[i]
		}
		items[i] = item{title: c.Title, desc: desc, index: i}
	}
	return items
}

func seriesRows(series []collect.Series) []table.Row {
	var rows []table.Row
	for _, s := range series {
		for _, p := range s.Points {
			rows = append(rows, table.Row{
				s.Method,
				p.Label,
				fmt.Sprintf("%.4g", p.Score),
				fmt.Sprintf("%.4g", p.Low),
				fmt.Sprintf("%.4g", p.High),
				s.Unit,
			})
		}
	}
	return rows
}

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
)

// View renders the browser for the current state.
func (m *model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewRendering:
		timer := fmt.Sprintf("%.1f", time.Since(m.startTime).Seconds())
		return fmt.Sprintf("\n  %s Rendering %s... %ss\n", m.spinner.View(), m.opts.Input, timer)

	case viewChartSelector:
		out := lipgloss.NewStyle().Margin(1, 2).Render(m.chartList.View())
		return out + m.statusLine(" (enter to inspect, o to open, q to quit)")

	case viewSeries:
		var b strings.Builder
		title := m.res.Structure.Charts[m.selected].Title
		b.WriteString(headerStyle.Render(title))
		b.WriteString(helpStyle.Render(" (esc to go back, o to open, q to quit)"))
		b.WriteString("\n\n")
		b.WriteString(m.seriesTable.View())
		b.WriteString(m.statusLine(""))
		return b.String()

	default:
		return "Unknown state"
	}
}

func (m *model) statusLine(help string) string {
	line := help
	if m.status != "" {
		line = " " + m.status
	}
	if line == "" {
		return ""
	}
	return "\n" + helpStyle.Render(line)
}

// StartGUI renders the figures described by opts and browses them until the
// user quits.
func StartGUI(opts viz.Options, logger *slog.Logger) error {
	m := initialModel(opts, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return m.err
}
