package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var conceptCmd = &cobra.Command{
	Use:   "concept",
	Short: "Query the concept knowledge graph",
}

var conceptContextCmd = &cobra.Command{
	Use:   "context <name>",
	Short: "Show a concept and its direct prerequisites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConceptEngine(cmd, func(ctx context.Context, e *concept.Engine) error {
			lc, err := e.LearningContext(ctx, args[0])
			if err != nil {
				return err
			}
			if lc == nil {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("No concept matches %q.", args[0])))
				return nil
			}

			fmt.Println(theme.Title.Render(lc.Current.Name))
			printConceptMeta(lc.Current)
			printConceptList("Prerequisites", lc.Prerequisites)
			return nil
		})
	},
}

var conceptNextCmd = &cobra.Command{
	Use:   "next <name>",
	Short: "Recommend concepts to study after this one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConceptEngine(cmd, func(ctx context.Context, e *concept.Engine) error {
			next, err := e.RecommendNext(ctx, args[0])
			if err != nil {
				return err
			}
			if len(next) == 0 {
				fmt.Println(theme.Hint.Render("Nothing to recommend."))
				return nil
			}
			printConceptList("Up next", next)
			return nil
		})
	},
}

var conceptPathCmd = &cobra.Command{
	Use:   "path <name>",
	Short: "Show every prerequisite on the way to a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConceptEngine(cmd, func(ctx context.Context, e *concept.Engine) error {
			path, err := e.LearningPath(ctx, args[0])
			if err != nil {
				return err
			}
			if len(path) == 0 {
				fmt.Println(theme.Hint.Render("No prerequisites; start here."))
				return nil
			}

			fmt.Println(theme.Label.Render("Learning path"))
			for i, c := range path {
				fmt.Printf("  %2d. %s\n", i+1, theme.Value.Render(c.Name))
			}
			return nil
		})
	},
}

var conceptAnalyzeCmd = &cobra.Command{
	Use:   "analyze <name>",
	Short: "Full neighborhood analysis of a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConceptEngine(cmd, func(ctx context.Context, e *concept.Engine) error {
			a, err := e.Analyze(ctx, args[0])
			if err != nil {
				return err
			}
			if a == nil {
				fmt.Println(theme.Hint.Render(fmt.Sprintf("No concept matches %q.", args[0])))
				return nil
			}

			var b strings.Builder
			b.WriteString(theme.Title.Render(a.Target.Name))
			b.WriteString("\n")
			if a.Target.Description != "" {
				b.WriteString(theme.Body.Render(a.Target.Description))
				b.WriteString("\n")
			}
			fmt.Println(theme.Card.Render(strings.TrimRight(b.String(), "\n")))

			printConceptMeta(a.Target)
			printConceptList("Prerequisites", a.Prerequisites)
			printConceptList("Subtopics", a.Subtopics)
			printConceptList("Related concepts", a.RelatedConcepts)
			printConceptList("Easier alternatives", a.EasierAlternatives)
			return nil
		})
	},
}

func init() {
	conceptCmd.AddCommand(conceptContextCmd)
	conceptCmd.AddCommand(conceptNextCmd)
	conceptCmd.AddCommand(conceptPathCmd)
	conceptCmd.AddCommand(conceptAnalyzeCmd)
}

func withConceptEngine(cmd *cobra.Command, fn func(context.Context, *concept.Engine) error) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	cs, closeStore, err := conceptStore(ctx, log)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(ctx, concept.NewEngine(cs, log))
}

func printConceptMeta(c concept.Concept) {
	if c.Type != "" {
		fmt.Printf("%s %s\n", theme.Label.Render("Type:"), c.Type)
	}
	if c.Complexity != "" {
		fmt.Printf("%s %s\n", theme.Label.Render("Complexity:"), c.Complexity)
	}
	if c.EstimatedHours > 0 {
		fmt.Printf("%s %dh\n", theme.Label.Render("Estimated:"), c.EstimatedHours)
	}
	if len(c.KeyConcepts) > 0 {
		fmt.Printf("%s %s\n", theme.Label.Render("Key ideas:"), strings.Join(c.KeyConcepts, ", "))
	}
}

func printConceptList(header string, cs []concept.Concept) {
	if len(cs) == 0 {
		return
	}
	fmt.Println(theme.Label.Render(header))
	for _, c := range cs {
		fmt.Printf("  • %s\n", theme.Value.Render(c.Name))
	}
}
