package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/profile"
	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and edit student cognitive profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show <student-id>",
	Short: "Show a student's cognitive profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		p, err := s.ProfileRepo().Get(ctx, studentID)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println(theme.Hint.Render("No stored profile; showing defaults."))
			p = profile.Default()
		}

		for _, d := range profile.Dimensions() {
			value := p[d.ID]
			marker := ""
			if value != d.Default {
				marker = theme.Changed.Render(" *")
			}
			fmt.Printf("%-22s %s%s\n", theme.Label.Render(string(d.ID)), value, marker)
		}
		fmt.Println(theme.Hint.Render("\n* differs from the default"))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <student-id> <dimension>=<option> [...]",
	Short: "Set one or more profile dimensions",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}

		update := make(profile.Update, len(args)-1)
		for _, pair := range args[1:] {
			dim, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("expected <dimension>=<option>, got %q", pair)
			}
			update[profile.DimensionID(dim)] = value
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		prior, err := s.ProfileRepo().Get(ctx, studentID)
		if err != nil {
			return err
		}
		if prior == nil {
			prior = profile.Default()
		}

		next, err := prior.Apply(update)
		if err != nil {
			return err
		}
		if err := s.ProfileRepo().Save(ctx, studentID, next); err != nil {
			return err
		}

		fmt.Println(theme.OK.Render(fmt.Sprintf("Updated %d dimension(s).", len(update))))
		return nil
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history <student-id>",
	Short: "Show recent adaptation events for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one student id")
		}
		studentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().RecentAdaptations(cmd.Context(), studentID, limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(theme.Hint.Render("No adaptation events recorded."))
			return nil
		}

		for _, e := range events {
			fmt.Printf("%s  %s  %s\n",
				theme.Subtitle.Render(e.Timestamp.Local().Format("2006-01-02 15:04:05")),
				theme.Label.Render(fmt.Sprintf("conf %.2f", e.Data.Confidence)),
				formatChanged(e.Data.Changed))
		}
		return nil
	},
}

func formatChanged(changed map[string]string) string {
	if len(changed) == 0 {
		return theme.Hint.Render("no change")
	}
	parts := make([]string, 0, len(changed))
	for _, d := range profile.Dimensions() {
		if v, ok := changed[string(d.ID)]; ok {
			parts = append(parts, fmt.Sprintf("%s→%s", d.ID, v))
		}
	}
	return theme.Changed.Render(strings.Join(parts, "  "))
}

func init() {
	profileHistoryCmd.Flags().Int("limit", 20, "Maximum number of events to show")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileHistoryCmd)
}
