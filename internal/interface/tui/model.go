package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/neilberkman/chatlens/internal/core/report"
	"github.com/neilberkman/chatlens/internal/core/stats"
	"github.com/neilberkman/chatlens/pkg/watranscript"
)

type tab int

const (
	overviewTab tab = iota
	authorsTab
	wordsTab
	emojiTab
	activityTab
	messagesTab
	tabCount
)

var tabNames = []string{"Overview", "Authors", "Words", "Emoji", "Activity", "Messages"}

type Model struct {
	path     string
	messages []watranscript.Message
	snapshot *stats.Snapshot

	active   tab
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
}

type statusClearMsg struct{}

func New(path string, messages []watranscript.Message, snapshot *stats.Snapshot) Model {
	return Model{
		path:     path,
		messages: messages,
		snapshot: snapshot,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.SetContent(m.renderMessages())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab", "right", "l":
			m.active = (m.active + 1) % tabCount
			return m, nil

		case "shift+tab", "left", "h":
			m.active = (m.active + tabCount - 1) % tabCount
			return m, nil

		case "c":
			return m.copyReport()
		}

		// The messages tab scrolls; everything else fits on screen
		if m.active == messagesTab && m.ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusClearMsg:
		m.status = ""
		return m, nil
	}

	if m.active == messagesTab && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) copyReport() (tea.Model, tea.Cmd) {
	out, err := report.RenderMarkdown(m.snapshot)
	if err == nil {
		err = clipboard.WriteAll(out)
	}
	if err != nil {
		m.status = "copy failed: " + err.Error()
	} else {
		m.status = "report copied to clipboard"
	}
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

func (m *Model) renderMessages() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for _, msg := range m.messages {
		header := fmt.Sprintf("%s  %s",
			timestampStyle.Render(msg.Timestamp.Format("2006-01-02 15:04")),
			authorStyle.Render(msg.Author))
		b.WriteString(header + "\n")
		b.WriteString(wordwrap.String(msg.Content, width-2) + "\n\n")
	}
	return b.String()
}
