// Package tui implements the terminal record browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pkg.jsn.cam/recordgen/internal/csvexport"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// ErrorStep is how much one key press changes the error count.
const ErrorStep = 0.25

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options sets the initial dataset and the export target.
type Options struct {
	Region     recordgen.Region
	ErrorRate  float64
	Seed       string
	ExportPath string
}

// pageMsg delivers a fetched page. Pages of an older dataset are dropped.
type pageMsg struct {
	dataset int
	page    int
	records recordgen.Page
	err     error
}

type seedMsg struct {
	seed int64
	err  error
}

type exportedMsg struct {
	path string
	rows int
	err  error
}

type flashMsg struct{}

// Model is the root Bubble Tea model of the browser.
type Model struct {
	ctx    context.Context
	source Source
	keys   keyMap
	table  table.Model

	region     int
	errorRate  float64
	seed       string
	exportPath string

	dataset int
	page    int
	records []recordgen.Record
	loading bool

	flash string
	err   error
}

// New creates a browser that loads page 1 on start.
func New(ctx context.Context, source Source, opts Options) Model {
	if opts.Seed == "" {
		opts.Seed = "0"
	}
	if opts.ExportPath == "" {
		opts.ExportPath = "generated_data.csv"
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "UUID", Width: 36},
			{Title: "Name", Width: 26},
			{Title: "Address", Width: 44},
			{Title: "Phone", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	return Model{
		ctx:        ctx,
		source:     source,
		keys:       defaultKeyMap(),
		table:      t,
		region:     max(slices.Index(recordgen.Regions, opts.Region), 0),
		errorRate:  opts.ErrorRate,
		seed:       opts.Seed,
		exportPath: opts.ExportPath,
		loading:    true,
	}
}

// Run starts the browser in the terminal and blocks until it exits.
func Run(ctx context.Context, source Source, opts Options) error {
	_, err := tea.NewProgram(New(ctx, source, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.fetchPage(1)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-7, 3))
		m.table.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pageMsg:
		if msg.dataset != m.dataset {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.page = msg.page
		m.records = append(m.records, msg.records...)
		m.table.SetRows(rows(m.records))
		return m, nil

	case seedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.seed = strconv.FormatInt(msg.seed, 10)
		return m.reset()

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.flash = fmt.Sprintf("exported %d rows to %s", msg.rows, msg.path)
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.RandomSeed):
		return m, m.fetchSeed()

	case key.Matches(msg, m.keys.MoreErrors):
		m.errorRate = math.Min(m.errorRate+ErrorStep, recordgen.MaxErrorRate)
		return m.reset()

	case key.Matches(msg, m.keys.FewErrors):
		m.errorRate = math.Max(m.errorRate-ErrorStep, 0)
		return m.reset()

	case key.Matches(msg, m.keys.NextRegion):
		m.region = (m.region + 1) % len(recordgen.Regions)
		return m.reset()

	case key.Matches(msg, m.keys.Regenerate):
		return m.reset()

	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m, next := m.fetchNextIfAtBottom()
	return m, tea.Batch(cmd, next)
}

// reset starts a new dataset from page 1.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.dataset++
	m.page = 0
	m.records = nil
	m.err = nil
	m.loading = true
	m.table.SetRows(nil)
	m.table.SetCursor(0)
	return m, m.fetchPage(1)
}

// fetchNextIfAtBottom requests the next page once the cursor sits on the
// last loaded row and no fetch is in flight.
func (m Model) fetchNextIfAtBottom() (Model, tea.Cmd) {
	if m.loading || len(m.records) == 0 || m.table.Cursor() < len(m.records)-1 {
		return m, nil
	}
	m.loading = true
	return m, m.fetchPage(m.page + 1)
}

func (m Model) request(page int) protocol.GenerateRequest {
	return protocol.GenerateRequest{
		Region: recordgen.Regions[m.region].Code(),
		Errors: protocol.ErrorRate(m.errorRate),
		Seed:   protocol.Seed(m.seed),
		Page:   page,
	}
}

func (m Model) fetchPage(page int) tea.Cmd {
	ctx, source, dataset, req := m.ctx, m.source, m.dataset, m.request(page)
	return func() tea.Msg {
		records, err := source.Generate(ctx, req)
		return pageMsg{dataset: dataset, page: page, records: records, err: err}
	}
}

func (m Model) fetchSeed() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		seed, err := source.RandomSeed(ctx)
		return seedMsg{seed: seed, err: err}
	}
}

func (m Model) export() tea.Cmd {
	records, path := slices.Clone(m.records), m.exportPath
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{err: err}
		}
		werr := csvexport.WriteAll(f, records)
		return exportedMsg{path: path, rows: len(records), err: errors.Join(werr, f.Close())}
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func rows(records []recordgen.Record) []table.Row {
	out := make([]table.Row, len(records))
	for i, r := range records {
		out[i] = table.Row{strconv.Itoa(i + 1), r.Identifier, r.Name, r.Address, r.Phone}
	}
	return out
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("recordgen"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"region: %s  errors: %.2f  seed: %s  pages: %d  records: %d",
		recordgen.Regions[m.region].Label(), m.errorRate, m.seed, m.page, len(m.records),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	case m.loading:
		b.WriteString(statusStyle.Render("loading..."))
	case m.flash != "":
		b.WriteString(flashStyle.Render(m.flash))
	}
	b.WriteString("\n")

	help := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}
