package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().RecentLLMRequests(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(theme.Hint.Render("No LLM requests recorded."))
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-18s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 104))

		for _, e := range events {
			if purpose != "" && e.Data.Purpose != purpose {
				continue
			}
			ok := theme.OK.Render("✓")
			if !e.Data.Success {
				ok = theme.Failed.Render("✗")
			}
			model := e.Data.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-18s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Data.Purpose,
				model,
				e.Data.InputTokens,
				e.Data.OutputTokens,
				e.Data.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show total token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		input, output, err := s.EventRepo().LLMTokenTotals(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s %d\n", theme.Label.Render("Input tokens: "), input)
		fmt.Printf("%s %d\n", theme.Label.Render("Output tokens:"), output)
		fmt.Printf("%s %d\n", theme.Label.Render("Total:        "), input+output)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose label")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmUsageCmd)
}
