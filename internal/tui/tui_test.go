package tui

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

// helpers

type fakeSource struct {
	requests []protocol.GenerateRequest
	seed     int64
	err      error
}

func (f *fakeSource) Generate(ctx context.Context, req protocol.GenerateRequest) (recordgen.Page, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return recordgen.NewGenerator().Generate(ctx, req.ToGenerationRequest())
}

func (f *fakeSource) RandomSeed(context.Context) (int64, error) {
	return f.seed, nil
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain runs cmd and feeds every resulting message except ticks back into m.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
		m = drain(t, m, cmd)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case flashMsg:
		return nil
	default:
		if _, ok := msg.(tea.QuitMsg); ok {
			return nil
		}
		return []tea.Msg{msg}
	}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func started(t *testing.T, src Source, opts Options) Model {
	t.Helper()
	m := New(context.Background(), src, opts)
	return drain(t, m, m.Init())
}

// tests

func TestInitLoadsFirstPage(t *testing.T) {
	src := &fakeSource{}
	m := started(t, src, Options{Region: recordgen.RegionDE, Seed: "5"})

	if len(m.records) != recordgen.PageSize {
		t.Fatalf("records = %d, want %d", len(m.records), recordgen.PageSize)
	}
	if m.page != 1 || m.loading {
		t.Errorf("page = %d loading = %v, want 1 false", m.page, m.loading)
	}
	if got := src.requests[0]; got.Region != "de" || got.Seed != "5" || got.Page != 1 {
		t.Errorf("first request = %+v", got)
	}
}

func TestCursorAtBottomFetchesNextPage(t *testing.T) {
	src := &fakeSource{}
	m := started(t, src, Options{Seed: "1"})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	if m.page != 2 {
		t.Fatalf("page = %d, want 2", m.page)
	}
	if len(m.records) != 2*recordgen.PageSize {
		t.Errorf("records = %d, want %d", len(m.records), 2*recordgen.PageSize)
	}
	if last := src.requests[len(src.requests)-1]; last.Page != 2 {
		t.Errorf("last request page = %d, want 2", last.Page)
	}
}

func TestNoFetchWhileLoading(t *testing.T) {
	m := started(t, &fakeSource{}, Options{Seed: "1"})
	m.loading = true

	next, cmd := m.fetchNextIfAtBottom()
	if cmd != nil {
		t.Error("fetch issued while another is in flight")
	}
	if next.page != 1 {
		t.Errorf("page = %d, want 1", next.page)
	}
}

func TestStalePagesAreDropped(t *testing.T) {
	m := started(t, &fakeSource{}, Options{Seed: "1"})
	stale := pageMsg{dataset: m.dataset - 1, page: 9, records: make(recordgen.Page, 3)}

	next, _ := m.Update(stale)

	if got := next.(Model); got.page != 1 || len(got.records) != recordgen.PageSize {
		t.Errorf("stale page applied: page=%d records=%d", got.page, len(got.records))
	}
}

func TestErrorKeysResetDataset(t *testing.T) {
	src := &fakeSource{}
	m := started(t, src, Options{Seed: "3"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	m = press(t, m, keyMsg('+'))
	m = press(t, m, keyMsg('+'))

	if m.errorRate != 2*ErrorStep {
		t.Errorf("errorRate = %v, want %v", m.errorRate, 2*ErrorStep)
	}
	if m.page != 1 || len(m.records) != recordgen.PageSize {
		t.Errorf("after reset page=%d records=%d", m.page, len(m.records))
	}
	if last := src.requests[len(src.requests)-1]; last.Errors != protocol.ErrorRate(2*ErrorStep) {
		t.Errorf("last request errors = %v", last.Errors)
	}

	for range 5 {
		m = press(t, m, keyMsg('-'))
	}
	if m.errorRate != 0 {
		t.Errorf("errorRate = %v, want clamped to 0", m.errorRate)
	}
}

func TestRegionCycle(t *testing.T) {
	src := &fakeSource{}
	m := started(t, src, Options{Region: recordgen.RegionEN, Seed: "1"})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if got := recordgen.Regions[m.region]; got != recordgen.RegionDE {
		t.Errorf("region = %v, want de", got)
	}
	if last := src.requests[len(src.requests)-1]; last.Region != "de" {
		t.Errorf("last request region = %q", last.Region)
	}
}

func TestRandomSeed(t *testing.T) {
	src := &fakeSource{seed: 4242}
	m := started(t, src, Options{Seed: "1"})

	m = press(t, m, keyMsg('r'))

	if m.seed != "4242" {
		t.Errorf("seed = %q, want 4242", m.seed)
	}
	if last := src.requests[len(src.requests)-1]; last.Seed != "4242" || last.Page != 1 {
		t.Errorf("last request = %+v", last)
	}
}

func TestFetchErrorShown(t *testing.T) {
	m := started(t, &fakeSource{err: errors.New("server down")}, Options{Seed: "1"})

	if m.err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(m.View(), "server down") {
		t.Error("view should show the fetch error")
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	m := started(t, &fakeSource{}, Options{Seed: "8", ExportPath: path})

	m = press(t, m, keyMsg('e'))

	if !strings.Contains(m.flash, "exported 20 rows") {
		t.Errorf("flash = %q", m.flash)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+recordgen.PageSize {
		t.Fatalf("rows = %d, want %d", len(rows), 1+recordgen.PageSize)
	}
	if rows[1][1] != m.records[0].Identifier {
		t.Errorf("first row uuid = %q, want %q", rows[1][1], m.records[0].Identifier)
	}
}

func TestViewShowsState(t *testing.T) {
	m := started(t, &fakeSource{}, Options{Region: recordgen.RegionPL, ErrorRate: 1.5, Seed: "77"})
	view := m.View()

	for _, want := range []string{"recordgen", "seed: 77", "errors: 1.50", "records: 20"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m := started(t, &fakeSource{}, Options{Seed: "1"})
	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
