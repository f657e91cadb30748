package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/oracle"
	"github.com/pkritika/cortex/internal/ui/theme"
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Query the math oracle directly",
}

var oracleAskCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Ask the configured oracle (Wolfram or LLM) a math question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		query := strings.Join(args, " ")
		sol, err := a.Oracle.Solve(cmd.Context(), query)
		if errors.Is(err, oracle.ErrNotConfigured) {
			return errors.New("no oracle configured: set WOLFRAM_APP_ID, or CORTEX_ORACLE=llm with an LLM API key")
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", theme.Hint.Render(a.Oracle.SolverName()+":"), theme.StatValue.Render(sol.Answer))
		for _, st := range sol.Steps {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Subtitle.Render(st.Title))
			fmt.Fprintln(out, theme.Body.Render(st.Text))
		}
		return nil
	},
}

func init() {
	oracleCmd.AddCommand(oracleAskCmd)
}
