package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/cache"
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/embedding"
	"github.com/jonathan/ats-scorer/internal/extraction"
	"github.com/jonathan/ats-scorer/internal/grammar"
	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/jdmatch"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/nlp"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/pipeline"
	"github.com/jonathan/ats-scorer/internal/privacy"
	"github.com/jonathan/ats-scorer/internal/skillcheck"
	"github.com/jonathan/ats-scorer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full resume analysis pipeline",
	Long:  "Analyze a resume text file, optionally against a job description from a file or URL, and print the score breakdown with feedback.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile     string
	analyzeResume         string
	analyzeJob            string
	analyzeJobURL         string
	analyzeAnnotator      string
	analyzeEmbedder       string
	analyzeGrammar        string
	analyzeEmbeddingModel string
	analyzeAPIKey         string
	analyzeThreshold      float64
	analyzeUseBrowser     bool
	analyzeVerbose        bool
	analyzeJSON           bool
	analyzeDatabaseURL    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVar(&analyzeAnnotator, "annotator", "", "Annotator provider: heuristic or gemini")
	analyzeCmd.Flags().StringVar(&analyzeEmbedder, "embedder", "", "Embedder provider: hashing or gemini")
	analyzeCmd.Flags().StringVar(&analyzeGrammar, "grammar", "", "Grammar checker: neutral or heuristic")
	analyzeCmd.Flags().StringVar(&analyzeEmbeddingModel, "embedding-model", "", "Gemini embedding model name")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "similarity-threshold", 0, "Cosine similarity threshold for skill validation")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render the job URL with a headless browser when needed")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print progress and per-stage reports")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis result as JSON")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "database-url", "", "PostgreSQL URL for saving analysis history")

	rootCmd.AddCommand(analyzeCmd)
}

// resolveConfig merges the config file, defaults, and CLI flags. Flags the
// user set explicitly win over the file; the file wins over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Config{}
	if analyzeConfigFile != "" {
		loaded, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if flags.Changed("job") {
		cfg.Job = analyzeJob
	}
	if flags.Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if flags.Changed("annotator") {
		cfg.Annotator = analyzeAnnotator
	}
	if flags.Changed("embedder") {
		cfg.Embedder = analyzeEmbedder
	}
	if flags.Changed("grammar") {
		cfg.GrammarChecker = analyzeGrammar
	}
	if flags.Changed("embedding-model") {
		cfg.EmbeddingModel = analyzeEmbeddingModel
	}
	if flags.Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if flags.Changed("similarity-threshold") {
		cfg.SimilarityThreshold = analyzeThreshold
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if flags.Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if flags.Changed("database-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	if cfg.Resume == "" {
		return cfg, fmt.Errorf("resume file is required (use --resume or the config file)")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildDeps constructs the pipeline collaborators for the chosen providers.
func buildDeps(ctx context.Context, cfg config.Config) (pipeline.Deps, func(), error) {
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var annotator nlp.Annotator
	switch cfg.Annotator {
	case config.AnnotatorGemini:
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return pipeline.Deps{}, closeAll, fmt.Errorf("failed to create LLM client: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		annotator = nlp.NewGeminiAnnotator(client, llm.TierStandard)
	default:
		annotator = nlp.NewHeuristicAnnotator()
	}

	var embedder embedding.Embedder
	switch cfg.Embedder {
	case config.EmbedderGemini:
		model := cfg.EmbeddingModel
		if model == "" {
			model = embedding.DefaultGeminiEmbeddingModel
		}
		gem, err := embedding.NewGeminiEmbedder(ctx, apiKey, model)
		if err != nil {
			return pipeline.Deps{}, closeAll, fmt.Errorf("failed to create embedder: %w", err)
		}
		closers = append(closers, func() { _ = gem.Close() })
		embedder = gem
	default:
		embedder = embedding.NewHashingEmbedder(embedding.DefaultHashingDimensions)
	}

	var checker grammar.Checker
	switch cfg.GrammarChecker {
	case config.GrammarHeuristic:
		checker = grammar.NewHeuristicChecker()
	default:
		checker = grammar.NeutralChecker{}
	}

	deps := pipeline.Deps{
		Extractor:  extraction.NewExtractor(annotator),
		Validator:  skillcheck.NewValidator(embedder, cfg.SimilarityThreshold),
		Detector:   privacy.NewDetector(annotator),
		Comparator: jdmatch.NewComparator(embedder, annotator),
		Grammar:    checker,
		Cache:      cache.New(cfg.CacheCapacity),
	}
	if cfg.Verbose {
		deps.Progress = func(e pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%3.0f%%] %s: %s\n", e.Percent, e.Stage, e.Message)
		}
	}
	return deps, closeAll, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	resumeText, err := ingestion.LoadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var jdText string
	switch {
	case cfg.Job != "":
		jdText, err = ingestion.LoadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
	case cfg.JobURL != "":
		jdText, err = ingestion.FetchJobPosting(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	deps, closeDeps, err := buildDeps(ctx, cfg)
	defer closeDeps()
	if err != nil {
		return err
	}

	orchestrator := pipeline.New(deps)
	result, runErr := orchestrator.Analyze(ctx, resumeText, jdText)

	if analyzeJSON {
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(payload))
	} else {
		printReports(result, cfg.Verbose)
	}

	if runErr != nil {
		return runErr
	}

	if cfg.DatabaseURL != "" {
		if err := saveHistory(ctx, cfg.DatabaseURL, result, resumeText, jdText); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "Saved analysis %s to history\n", result.ID)
		}
	}
	return nil
}

// printReports writes the formatted result boxes to stdout.
func printReports(result *types.AnalysisResult, verbose bool) {
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintWarnings(result.Warnings)
	printer.PrintScoreReport(result.Score)

	if verbose {
		printer.PrintSkillValidation(result.SkillValidation, result.SkillFeedback)
		printer.PrintExperience(result.Experience)
		printer.PrintPrivacyReport(result.Privacy)
		printer.PrintJDComparison(result.JDComparison)
	}
}

// saveHistory persists the result for later listing.
func saveHistory(ctx context.Context, databaseURL string, result *types.AnalysisResult, resumeText, jdText string) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to history database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	return database.SaveAnalysis(ctx, result, hashText(resumeText), hashText(jdText))
}

func hashText(text string) string {
	if text == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
