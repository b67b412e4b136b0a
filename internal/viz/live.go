package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/taylab/internal/analysis"
	"github.com/san-kum/taylab/internal/catalog"
	"github.com/san-kum/taylab/internal/expand"
)

type appState int

const (
	stateMenu appState = iota
	stateExplore
)

// trace records every accumulated term of one convergence evaluation so
// playback can step through them after the fact.
type trace struct {
	indices  []int
	terms    []float64
	partials []float64
}

func (t *trace) OnTerm(n int, term, partial float64) {
	t.indices = append(t.indices, n)
	t.terms = append(t.terms, term)
	t.partials = append(t.partials, partial)
}

type model struct {
	state   appState
	cursor  int
	entries []catalog.Entry

	entry     catalog.Entry
	x         float64
	precision float64
	focus     int // 0 = x, 1 = precision

	trace  *trace
	deltas []float64
	rate   float64
	result expand.Result[float64]
	pos    int
	paused bool

	width  int
	height int
}

func newModel() model {
	names := catalog.Names()
	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		entry, err := catalog.Lookup(name)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return model{
		state:     stateMenu,
		entries:   entries,
		x:         0.5,
		precision: 1e-9,
		width:     80,
		height:    24,
	}
}

func (m model) Init() tea.Cmd {
	if m.state == stateExplore {
		return tick()
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateExplore {
			return m, nil
		}
		if !m.paused && m.trace != nil && m.pos < len(m.trace.partials) {
			m.pos++
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateExplore:
		return m.exploreKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.entry = m.entries[m.cursor]
		m.evaluate()
		m.state = stateExplore
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) exploreKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.pos = 0
		m.paused = false
	case "tab":
		m.focus = (m.focus + 1) % 2
	case "up", "k":
		m.adjust(1)
		m.evaluate()
	case "down", "j":
		m.adjust(-1)
		m.evaluate()
	case "enter":
		m.evaluate()
	}
	return m, nil
}

func (m *model) adjust(dir int) {
	if m.focus == 0 {
		m.x += 0.1 * float64(dir)
		return
	}
	if dir > 0 {
		m.precision /= 10
	} else {
		m.precision *= 10
	}
	if m.precision < 1e-15 {
		m.precision = 1e-15
	}
	if m.precision > 0.1 {
		m.precision = 0.1
	}
}

func (m *model) evaluate() {
	tr := &trace{}
	ev := expand.NewConvergence[float64](m.precision)
	ev.AddObserver(tr)
	m.result = ev.Evaluate(m.entry.Series, m.x)
	m.trace = tr
	m.deltas = analysis.Deltas(tr.partials)
	m.rate = analysis.Rate(m.deltas)
	m.pos = 0
	m.paused = false
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateExplore:
		return m.viewExplore()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("t a y l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, entry := range m.entries {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", entry.Name)) + dim.Render(entry.Describe) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", entry.Name)) + dimmer.Render(entry.Describe) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter evaluate   q quit") + "\n")

	return b.String()
}

func (m model) viewExplore() string {
	var b strings.Builder

	total := 0
	if m.trace != nil {
		total = len(m.trace.partials)
	}
	pos := m.pos
	if pos > total {
		pos = total
	}

	statusIcon := green.Render("●")
	statusText := green.Render("playing")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	if pos == total {
		statusIcon = cyan.Render("●")
		statusText = cyan.Render("done")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.entry.Name), statusText))

	frac := 1.0
	if total > 0 {
		frac = float64(pos) / float64(total)
	}
	b.WriteString(fmt.Sprintf("   %s %s\n\n", progressBar(frac, 36), dim.Render(fmt.Sprintf("%d/%d terms", pos, total))))

	chartWidth := m.width - 14
	if chartWidth < 40 {
		chartWidth = 40
	}
	chartHeight := m.height - 18
	if chartHeight < 6 {
		chartHeight = 6
	}

	switch {
	case total == 0:
		b.WriteString("   " + red.Render("no terms accumulated") + "\n")
	case pos < 2:
		b.WriteString("   " + dim.Render("accumulating...") + "\n")
	default:
		chart := SweepChart(m.trace.partials[:pos], chartWidth, chartHeight, "partial sums")
		for _, line := range strings.Split(chart, "\n") {
			b.WriteString("   " + line + "\n")
		}
	}
	b.WriteString("\n")

	params := []struct {
		name  string
		value string
	}{
		{"x", fmt.Sprintf("%.4f", m.x)},
		{"precision", fmt.Sprintf("%.1e", m.precision)},
	}
	for i, prm := range params {
		if i == m.focus {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", prm.name)) + magenta.Render(fmt.Sprintf("%12s", prm.value)) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-10s", prm.name)) + dim.Render(fmt.Sprintf("%12s", prm.value)) + "\n")
		}
	}
	b.WriteString("\n")

	if m.trace != nil && pos > 0 {
		i := pos - 1
		delta := 0.0
		if i < len(m.deltas) {
			delta = m.deltas[i]
		}
		b.WriteString(fmt.Sprintf("   %s%s  %s%s\n",
			dim.Render(fmt.Sprintf("%-10s", "term n")), white.Render(fmt.Sprintf("%-14d", m.trace.indices[i])),
			dim.Render(fmt.Sprintf("%-10s", "value")), white.Render(fmt.Sprintf("%.6g", m.trace.terms[i]))))
		b.WriteString(fmt.Sprintf("   %s%s  %s%s\n",
			dim.Render(fmt.Sprintf("%-10s", "partial")), white.Render(fmt.Sprintf("%-14.8g", m.trace.partials[i])),
			dim.Render(fmt.Sprintf("%-10s", "delta")), white.Render(fmt.Sprintf("%.3e", delta))))
	}

	if pos == total && total > 0 {
		b.WriteString(fmt.Sprintf("\n   %s%s  %s\n",
			dim.Render(fmt.Sprintf("%-10s", "value")), white.Render(fmt.Sprintf("%-14.12g", m.result.Value)),
			flagLabel(m.result.Flags)))
		b.WriteString(fmt.Sprintf("   %s%s  %s%s\n",
			dim.Render(fmt.Sprintf("%-10s", "reached")), white.Render(fmt.Sprintf("%-14.3e", m.result.ReachedPrecision)),
			dim.Render(fmt.Sprintf("%-10s", "rate")), white.Render(fmt.Sprintf("%.4f", m.rate))))
		if m.entry.Reference != nil {
			b.WriteString(fmt.Sprintf("   %s%s\n",
				dim.Render(fmt.Sprintf("%-10s", "reference")), white.Render(fmt.Sprintf("%.12g", m.entry.Reference(m.x)))))
		}
	}

	if m.trace != nil && pos > 1 {
		b.WriteString(fmt.Sprintf("\n   %s %s\n", dim.Render("|term|"), cyan.Render(sparkline(absAll(m.trace.terms[:pos]), 30))))
	}

	b.WriteString("\n" + dim.Render("   space pause  r replay  tab focus  ↑↓ adjust  enter re-evaluate  q back") + "\n")

	return b.String()
}

func absAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Abs(v)
	}
	return out
}

// RunInteractive launches the terminal explorer at the series menu.
func RunInteractive() error {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunExplorer launches the explorer directly on one catalog entry, skipping
// the menu. Backing out with q still lands on the menu.
func RunExplorer(entry catalog.Entry, x, precision float64) error {
	m := newModel()
	m.entry = entry
	m.x = x
	m.precision = precision
	for i, e := range m.entries {
		if e.Name == entry.Name {
			m.cursor = i
			break
		}
	}
	m.evaluate()
	m.state = stateExplore
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
