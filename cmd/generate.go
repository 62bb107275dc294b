package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/instruct"
	"github.com/adhikary/tutorgraph/internal/profile"
	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <student-id> <concept-name>",
	Short: "Generate a profile-aware lesson for a concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		cs, closeStore, err := conceptStore(ctx, log)
		if err != nil {
			return err
		}
		defer closeStore()

		analysis, err := concept.NewEngine(cs, log).Analyze(ctx, args[1])
		if err != nil {
			return err
		}
		if analysis == nil {
			return fmt.Errorf("no concept matches %q", args[1])
		}

		p, err := s.ProfileRepo().Get(ctx, studentID)
		if err != nil {
			return err
		}
		if p == nil {
			p = profile.Default()
		}

		provider, err := newProvider(ctx, s, log)
		if err != nil {
			return err
		}

		lesson, err := instruct.NewService(provider, log).Generate(ctx, analysis, p)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(analysis.Target.Name))
		fmt.Println(theme.Card.Render(lesson.Content))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%s · %d in / %d out tokens",
			lesson.Model, lesson.Usage.InputTokens, lesson.Usage.OutputTokens)))
		return nil
	},
}
