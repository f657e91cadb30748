package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/flashcards"
	"github.com/pkritika/cortex/internal/practice"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <subject>",
	Short: "Print generated practice questions for a subject",
	Long:  "Print generated questions for math, science, history, computing or economics, with the correct option marked.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := question.ParseSubject(args[0])
		if err != nil {
			return err
		}
		n, _ := cmd.Flags().GetInt("amount")
		asJSON, _ := cmd.Flags().GetBool("json")

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		qs := a.Practice.Questions(cmd.Context(), string(subject), n)
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, qs)
		}

		fmt.Fprintln(out, theme.Title.Render(subject.Icon()+"  "+subject.DisplayName()+" practice"))
		fmt.Fprintln(out)
		for i, q := range qs {
			printQuestion(out, i+1, q)
		}
		return nil
	},
}

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards [subject]",
	Short: "Print flashcards for one subject or a mixed deck",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("amount")
		asJSON, _ := cmd.Flags().GetBool("json")

		var subject question.Subject
		if len(args) == 1 {
			s, err := question.ParseSubject(args[0])
			if err != nil {
				return err
			}
			subject = s
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		var cards []question.Flashcard
		if subject == "" {
			if !cmd.Flags().Changed("amount") {
				n = flashcards.DefaultAmountPerSubject
			}
			cards = a.Flashcards.All(cmd.Context(), n)
		} else {
			cards = a.Flashcards.ForSubject(cmd.Context(), string(subject), n)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, cards)
		}
		for _, c := range cards {
			fmt.Fprintln(out, theme.Card.Render(
				theme.Hint.Render(c.Subject.DisplayName()+" · "+c.Category)+"\n"+
					theme.Body.Render(c.Question)+"\n"+
					theme.Correct.Render("→ "+c.Answer),
			))
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("amount", "n", practice.TestSize, "Number of questions")
	practiceCmd.Flags().Bool("json", false, "Print JSON instead of styled text")
	flashcardsCmd.Flags().IntP("amount", "n", flashcards.DefaultAmount, "Number of cards (per subject when no subject is given)")
	flashcardsCmd.Flags().Bool("json", false, "Print JSON instead of styled text")
}

func printQuestion(w io.Writer, n int, q question.Question) {
	fmt.Fprintf(w, "%s %s\n", theme.StatValue.Render(fmt.Sprintf("%d.", n)), theme.Body.Render(q.Text))
	if q.Category != "" {
		fmt.Fprintln(w, "   "+theme.Hint.Render(q.Category))
	}
	for i, opt := range q.Options {
		line := fmt.Sprintf("   %c) %s", 'a'+i, opt)
		if i == q.CorrectAnswer {
			fmt.Fprintln(w, theme.Correct.Render(line+"  ✓"))
		} else {
			fmt.Fprintln(w, theme.Unselected.Render(line))
		}
	}
	if q.Explanation != "" {
		fmt.Fprintln(w, "   "+theme.Dimmed.Render(q.Explanation))
	}
	fmt.Fprintln(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
