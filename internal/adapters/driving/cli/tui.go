package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file.pdf]",
	Short: "Launch the interactive terminal UI",
	Long: `Loads the given PDF and opens a chat-style terminal interface for
asking questions about it.

Controls:
  Enter - Ask the typed question
  Esc   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if qaService == nil {
		return errors.New("QA service not configured (is GROQ_API_KEY set?)")
	}

	status, err := qaService.LoadDocument(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if status.Chunks == 0 {
		return errors.New("no content could be extracted from the document")
	}

	model := tui.New(cmd.Context(), qaService, status)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
