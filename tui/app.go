// Package tui is an interactive viewer for rendered tables. It re-renders
// the table to fit the terminal on resize, scrolls tall output, reloads the
// source on demand, and flips border presets and color on and off.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/biswanathroul/pytable-formatter/internal/format"
	"github.com/biswanathroul/pytable-formatter/table"
)

// Source rebuilds the displayed table using the viewer's current options.
// The viewer calls it on reload, resize, and option changes; implementations
// typically re-read their input, so a reload picks up file edits.
type Source func(opts table.Options) (*table.Table, error)

// ReloadMsg asks the viewer to rebuild its table. File watchers send it
// through Program.Send when the underlying document changes.
type ReloadMsg struct{}

// borderPresets are the styles CycleBorder rotates through.
var borderPresets = []table.BorderStyle{
	table.BorderUnicode,
	table.BorderRounded,
	table.BorderASCII,
}

// Model is the top-level Bubbletea model for the table viewer.
type Model struct {
	src      Source
	name     string
	opts     table.Options
	border   int
	lines    []string
	err      error
	offset   int
	width    int
	height   int
	ready    bool
	showHelp bool
	rendered time.Time
}

// NewModel returns a viewer for the given source. The options carry the
// caller's color and logging choices; the table is first built when the
// initial window size arrives.
func NewModel(name string, src Source, opts table.Options) Model {
	m := Model{
		src:  src,
		name: name,
		opts: opts,
	}
	// Start the border cycle from the preset the caller chose, if any.
	for i, b := range borderPresets {
		if b == opts.Border {
			m.border = i
			break
		}
	}
	return m
}

// Init implements tea.Model. No initial commands are needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles key presses, window resizes, and
// reload requests.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.ScrollUp):
			m.scrollBy(-1)
		case key.Matches(msg, keys.ScrollDown):
			m.scrollBy(1)
		case key.Matches(msg, keys.PageUp):
			m.scrollBy(-m.contentHeight())
		case key.Matches(msg, keys.PageDown):
			m.scrollBy(m.contentHeight())
		case key.Matches(msg, keys.GoTop):
			m.offset = 0
		case key.Matches(msg, keys.GoBottom):
			m.offset = m.maxOffset()
		case key.Matches(msg, keys.CycleBorder):
			m.border = (m.border + 1) % len(borderPresets)
			m.opts.Border = borderPresets[m.border]
			m.rebuild()
		case key.Matches(msg, keys.ToggleColor):
			m.opts.ColorEnabled = !m.opts.ColorEnabled
			m.rebuild()
		case key.Matches(msg, keys.Reload):
			m.rebuild()
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.rebuild()

	case ReloadMsg:
		m.rebuild()
	}

	return m, nil
}

// rebuild renders the table at the current width. On failure the previous
// render is kept on screen and the error is shown in the header, so a
// half-saved document does not blank the viewer.
func (m *Model) rebuild() {
	tbl, err := m.src(m.opts)
	if err != nil {
		m.err = err
		return
	}
	out, err := tbl.Render(m.width)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.lines = strings.Split(out, "\n")
	m.rendered = time.Now()
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
}

func (m *Model) scrollBy(delta int) {
	m.offset += delta
	if m.offset < 0 {
		m.offset = 0
	}
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m *Model) maxOffset() int {
	max := len(m.lines) - m.contentHeight()
	if max < 0 {
		max = 0
	}
	return max
}

// contentHeight is the number of table lines that fit between the header and
// footer chrome.
func (m *Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model. It renders the title line, the visible table
// slice, and the footer.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	content := m.renderContent()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	title := styleTitle.Render(m.name)
	if m.err != nil {
		errText := format.TruncateWithEllipsis(m.err.Error(), m.width-lipgloss.Width(title)-2)
		return lipgloss.JoinHorizontal(lipgloss.Top, title, styleError.Render("  "+errText))
	}
	return title
}

func (m Model) renderContent() string {
	if len(m.lines) == 0 {
		return ""
	}
	start := m.offset
	if start > len(m.lines) {
		start = len(m.lines)
	}
	end := start + m.contentHeight()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	return strings.Join(m.lines[start:end], "\n")
}

// renderFooter renders the help text and last render timestamp, or the full
// keybinding list when help is toggled on.
func (m Model) renderFooter() string {
	if m.showHelp {
		var groups []string
		for _, group := range keys.FullHelp() {
			parts := make([]string, 0, len(group))
			for _, b := range group {
				parts = append(parts, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
			}
			groups = append(groups, strings.Join(parts, "  "))
		}
		return styleFooter.Render(strings.Join(groups, "\n"))
	}

	parts := make([]string, 0, 4)
	for _, b := range keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s: %s", b.Help().Key, b.Help().Desc))
	}
	help := strings.Join(parts, " | ")

	var stamp string
	if !m.rendered.IsZero() {
		stamp = fmt.Sprintf("  rendered %s", m.rendered.Format("15:04:05"))
	}
	return styleFooter.Render(help + stamp)
}

// Run starts the viewer in the alternate screen and blocks until the user
// quits.
func Run(name string, src Source, opts table.Options) error {
	return RunWithReload(name, src, opts, nil)
}

// RunWithReload is Run with an external reload trigger: every value received
// on changes rebuilds the table from the source. A nil channel disables the
// trigger. The caller keeps ownership of the channel and closes it when the
// underlying watcher stops.
func RunWithReload(name string, src Source, opts table.Options, changes <-chan struct{}) error {
	p := tea.NewProgram(NewModel(name, src, opts), tea.WithAltScreen())
	if changes != nil {
		go func() {
			for range changes {
				p.Send(ReloadMsg{})
			}
		}()
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
