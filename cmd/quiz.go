package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/quizui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <subject>",
	Short: "Take a practice test in the terminal and record the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := question.ParseSubject(args[0])
		if err != nil {
			return err
		}
		user, _ := cmd.Flags().GetString("user")

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		quiz, err := a.Practice.PracticeTest(cmd.Context(), string(subject))
		if err != nil {
			return err
		}

		final, err := quizui.Run(quizui.New(quiz, subject, user, a.Store.AppendResult))
		if err != nil {
			return fmt.Errorf("run quiz: %w", err)
		}
		if !final.Finished() {
			fmt.Fprintln(os.Stderr, "Quiz abandoned, nothing was saved.")
			return nil
		}
		if err := final.SaveErr(); err != nil {
			return fmt.Errorf("save result: %w", err)
		}

		r := final.Result()
		fmt.Fprintf(cmd.OutOrStdout(), "%s scored %d/%d on %s\n", r.UserID, r.Score, r.TotalQuestions, quiz.Title)
		return nil
	},
}

func init() {
	quizCmd.Flags().StringP("user", "u", "", "User id to record the result under (prompted when empty)")
}
