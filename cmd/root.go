package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adhikary/tutorgraph/internal/classify"
	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/llm"
	"github.com/adhikary/tutorgraph/internal/logger"
	"github.com/adhikary/tutorgraph/internal/neo4jgraph"
	"github.com/adhikary/tutorgraph/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorgraph",
	Short: "Adaptive tutoring core over a concept knowledge graph",
	Long: "Tutorgraph answers concept-graph questions (prerequisites, learning paths,\n" +
		"full analyses), keeps a per-student cognitive profile that adapts to what\n" +
		"the student writes, and generates profile-aware lessons.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORGRAPH_DB env var)")
	rootCmd.PersistentFlags().String("log", "dev", "Log mode: dev or prod")

	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTORGRAPH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	mode, _ := cmd.Flags().GetString("log")
	return logger.New(mode)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// conceptStore returns the neo4j-backed store when TUTORGRAPH_NEO4J_URI
// is set, and the bundled in-memory seed graph otherwise. The returned
// closer is a no-op for the in-memory graph.
func conceptStore(ctx context.Context, log *logger.Logger) (concept.Store, func(), error) {
	client, err := neo4jgraph.NewFromEnv(log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to neo4j: %w", err)
	}
	if client != nil {
		return neo4jgraph.NewStore(client), func() { _ = client.Close(ctx) }, nil
	}

	g, err := concept.NewSeedGraph()
	if err != nil {
		return nil, nil, fmt.Errorf("build seed graph: %w", err)
	}
	return g, func() {}, nil
}

// newClassifier picks the text classifier from TUTORGRAPH_CLASSIFIER:
// "keyword" (default, fully offline), "zeroshot" (hosted NLI model) or
// "llm" (schema-constrained provider call).
func newClassifier(ctx context.Context, s *store.Store, log *logger.Logger) (classify.Classifier, error) {
	switch os.Getenv("TUTORGRAPH_CLASSIFIER") {
	case "", "keyword":
		return classify.NewKeywordClassifier(classify.DefaultKeywordConfidence), nil
	case "zeroshot":
		return classify.NewZeroShotClient(classify.ZeroShotConfig{
			BaseURL: os.Getenv("TUTORGRAPH_ZEROSHOT_URL"),
			APIKey:  os.Getenv("TUTORGRAPH_ZEROSHOT_API_KEY"),
		})
	case "llm":
		provider, err := newProvider(ctx, s, log)
		if err != nil {
			return nil, err
		}
		return classify.NewLLMClassifier(provider, classify.DefaultLLMClassifierConfig()), nil
	default:
		return nil, fmt.Errorf("unknown classifier %q", os.Getenv("TUTORGRAPH_CLASSIFIER"))
	}
}

func newProvider(ctx context.Context, s *store.Store, log *logger.Logger) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// Fall back to whichever provider has a key in the ambient env.
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, s.EventRepo(), log)
}
