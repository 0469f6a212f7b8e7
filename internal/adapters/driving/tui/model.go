// Package tui implements the interactive chat view over a loaded
// document using Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// snippetDisplayChars bounds how much of a retrieved passage is shown.
const snippetDisplayChars = 400

var (
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	snippetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	chatBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().Bold(true)
	subHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// exchange is one question/answer pair in the transcript.
type exchange struct {
	question string
	answer   domain.Answer
	err      error
}

// answerMsg delivers an asynchronous Ask result.
type answerMsg struct {
	question string
	answer   domain.Answer
	err      error
}

// Asker is the TUI-facing subset of the QA service.
type Asker interface {
	Ask(ctx context.Context, question string) (domain.Answer, error)
}

// Model is the Bubble Tea model for the chat view.
type Model struct {
	qa       Asker
	ctx      context.Context
	status   domain.LoadStatus
	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model
	history  []exchange
	waiting  bool
	ready    bool
}

// New creates the chat model over an already-loaded document.
func New(ctx context.Context, qa Asker, status domain.LoadStatus) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Ask a question about the document"
	ti.Focus()
	ti.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		qa:       qa,
		ctx:      ctx,
		status:   status,
		input:    ti,
		viewport: viewport.New(0, 0),
		spin:     sp,
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 3 + ih + 1 // header, summary, status, input frame, spacer
		vh := msg.Height - reserved - ch
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderHistory())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			return m, tea.Batch(m.spin.Tick, m.askCmd(question))
		}

	case answerMsg:
		m.waiting = false
		m.history = append(m.history, exchange{
			question: msg.question,
			answer:   msg.answer,
			err:      msg.err,
		})
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := headerStyle.Render("docsift")
	summary := subHeaderStyle.Render(fmt.Sprintf(
		"%s | %d text blocks, %d images, %d tables, %d chunks",
		m.status.Path, m.status.TextItems, m.status.ImageItems,
		m.status.TableItems, m.status.Chunks))
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())

	status := statusStyle.Render("enter: ask | esc: quit")
	if m.waiting {
		status = m.spin.View() + " thinking..."
	}

	return header + "\n" + summary + "\n" + chat + "\n" + input + "\n" + status
}

// askCmd runs the question against the QA service off the UI loop.
func (m Model) askCmd(question string) tea.Cmd {
	qa, ctx := m.qa, m.ctx
	return func() tea.Msg {
		answer, err := qa.Ask(ctx, question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return "Ask a question to get started."
	}

	var b strings.Builder
	for i, ex := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(questionStyle.Render("? " + ex.question))
		b.WriteString("\n")
		if ex.err != nil {
			b.WriteString(errorStyle.Render("error: " + ex.err.Error()))
			continue
		}
		b.WriteString(ex.answer.Text)
		for j, s := range ex.answer.Snippets {
			b.WriteString("\n")
			b.WriteString(snippetStyle.Render(fmt.Sprintf(
				"  [%d] Page %d (%.3f): %s", j+1, s.Page, s.Score, truncateSnippet(s.Text))))
		}
	}
	return b.String()
}

func truncateSnippet(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) > snippetDisplayChars {
		return text[:snippetDisplayChars] + "..."
	}
	return text
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
