package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// snippetDisplayChars bounds how much of a retrieved passage is shown.
const snippetDisplayChars = 400

var askShowSnippets bool

var askCmd = &cobra.Command{
	Use:   "ask [file.pdf]",
	Short: "Load a PDF and answer questions about it",
	Long: `Loads the given PDF into an in-memory index, then reads questions
interactively (or line-wise from piped stdin) and prints answers with
page citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSnippets, "snippets", true, "show the retrieved passages under each answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if qaService == nil {
		return errors.New("QA service not configured (is GROQ_API_KEY set?)")
	}

	status, err := qaService.LoadDocument(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	printLoadStatus(cmd, status)

	if status.Chunks == 0 {
		return errors.New("no content could be extracted from the document")
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			cmd.Print("? ")
		}
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if interactive && (question == "exit" || question == "quit") {
			break
		}

		answer, err := qaService.Ask(cmd.Context(), question)
		if err != nil {
			cmd.PrintErrf("error: %v\n", err)
			continue
		}

		if !interactive {
			cmd.Printf("? %s\n", question)
		}
		cmd.Println(answer.Text)
		if askShowSnippets {
			printSnippets(cmd, answer.Snippets)
		}
		cmd.Println()
	}

	return scanner.Err()
}

func printLoadStatus(cmd *cobra.Command, status domain.LoadStatus) {
	cmd.Printf("Loaded %s: %d text blocks, %d images, %d tables (%d chunks indexed)\n",
		status.Path, status.TextItems, status.ImageItems, status.TableItems, status.Chunks)
}

func printSnippets(cmd *cobra.Command, snippets []domain.Snippet) {
	if len(snippets) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("Retrieved passages:")
	for i, s := range snippets {
		cmd.Printf("  [%d] Page %d (%.3f): %s\n", i+1, s.Page, s.Score, truncateSnippet(s.Text))
	}
}

func truncateSnippet(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) > snippetDisplayChars {
		return text[:snippetDisplayChars] + "..."
	}
	return text
}
