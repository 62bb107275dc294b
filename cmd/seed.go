package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/neo4jgraph"
	"github.com/adhikary/tutorgraph/internal/ui/theme"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled DSA concept graph into neo4j",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		client, err := neo4jgraph.NewFromEnv(log)
		if err != nil {
			return fmt.Errorf("connect to neo4j: %w", err)
		}
		if client == nil {
			return fmt.Errorf("TUTORGRAPH_NEO4J_URI is not set; nothing to seed")
		}
		defer client.Close(ctx)

		concepts := concept.SeedConcepts()
		relations := concept.SeedRelations()
		if err := neo4jgraph.NewStore(client).Seed(ctx, concepts, relations); err != nil {
			return err
		}

		fmt.Println(theme.OK.Render(fmt.Sprintf(
			"Seeded %d concepts and %d relations.", len(concepts), len(relations))))
		return nil
	},
}
