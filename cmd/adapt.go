package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/adapt"
	"github.com/adhikary/tutorgraph/internal/profile"
	"github.com/adhikary/tutorgraph/internal/store"
	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <student-id> <text>",
	Short: "Adapt a student's cognitive profile from free text",
	Long: "Runs the text through the configured classifier, updates the student's\n" +
		"per-dimension scores (decay then boost), persists the resulting profile\n" +
		"and prints what changed.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}
		text := strings.Join(args[1:], " ")

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
		classifier, err := newClassifier(ctx, s, log)
		if err != nil {
			return err
		}

		prior, err := s.ProfileRepo().Get(ctx, studentID)
		if err != nil {
			return err
		}
		if prior == nil {
			prior = profile.Default()
		}

		engine := adapt.NewEngine(classifier, s.ScoreRepo(), adapt.DefaultOptions(), log)
		result, err := engine.Adapt(ctx, studentID, prior, text)
		if err != nil {
			return err
		}

		if err := s.ProfileRepo().Save(ctx, studentID, result.Profile); err != nil {
			return err
		}
		if err := s.EventRepo().AppendAdaptation(ctx, adaptationEventData(result)); err != nil {
			log.Warn("failed to record adaptation event", "error", err)
		}

		fmt.Printf("%s %.2f\n", theme.Label.Render("Confidence:"), result.Confidence)
		if len(result.Update) == 0 {
			fmt.Println(theme.Hint.Render("No dimension changed."))
			return nil
		}
		for _, d := range profile.Dimensions() {
			if v, ok := result.Update[d.ID]; ok {
				fmt.Printf("  %s %s\n",
					theme.Label.Render(string(d.ID)+":"),
					theme.Changed.Render(v))
			}
		}
		return nil
	},
}

func adaptationEventData(r *adapt.Result) store.AdaptationEventData {
	data := store.AdaptationEventData{
		StudentID:  r.StudentID,
		Confidence: r.Confidence,
		Changed:    make(map[string]string, len(r.Update)),
		Dominants:  make(map[string]string, len(r.Outcomes)),
	}
	for dim, v := range r.Update {
		data.Changed[string(dim)] = v
	}
	for _, o := range r.Outcomes {
		data.Dominants[string(o.Dimension)] = o.Dominant
	}
	return data
}
