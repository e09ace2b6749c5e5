package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"instacreators-backend/cmd/instacreators-cli/utils"
	"instacreators-backend/lib/configutil"
	"instacreators-backend/lib/engagement"
	"instacreators-backend/lib/telemetry"
	"instacreators-backend/services/creatorintel"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mazen160/go-random"
	"github.com/spf13/cobra"
)

// Config holds the pass thresholds. Both keys are required; the analyzers
// carry no defaults, so a missing key aborts the run.
type Config struct {
	MinimumCommentsRequired       *int     `json:"minimum_comments_required"`
	MinimumTextPercentageRequired *float64 `json:"minimum_text_percentage_required"`
}

var analyzeInput *string
var analyzePostsOut *string
var analyzeCreatorsOut *string

func init() {
	analyzeInput = analyzeCmd.Flags().String("input", "comments.json", "The comment dump exported by the collector.")
	analyzePostsOut = analyzeCmd.Flags().String("posts", "posts.csv", "Where to write the per-post table.")
	analyzeCreatorsOut = analyzeCmd.Flags().String("creators", "creators.csv", "Where to write the per-creator table.")
	rootCmd.AddCommand(analyzeCmd)
}

func readThresholds() engagement.Thresholds {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		fatal("failed to read config", err)
	}
	if cfg.MinimumCommentsRequired == nil {
		fatal("invalid config", fmt.Errorf("minimum_comments_required is missing"))
	}
	if cfg.MinimumTextPercentageRequired == nil {
		fatal("invalid config", fmt.Errorf("minimum_text_percentage_required is missing"))
	}
	if *cfg.MinimumCommentsRequired < 0 {
		fatal("invalid config", fmt.Errorf("minimum_comments_required must be >= 0, got %d", *cfg.MinimumCommentsRequired))
	}
	if *cfg.MinimumTextPercentageRequired < 0 || *cfg.MinimumTextPercentageRequired > 100 {
		fatal("invalid config", fmt.Errorf("minimum_text_percentage_required must be in [0,100], got %g", *cfg.MinimumTextPercentageRequired))
	}
	return engagement.Thresholds{
		MinimumComments:       *cfg.MinimumCommentsRequired,
		MinimumTextPercentage: *cfg.MinimumTextPercentageRequired,
	}
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [--input <dump.json>] [--posts <posts.csv>] [--creators <creators.csv>]",
	Short: "Scores a collected comment dump and writes the post and creator tables.",
	Run: func(cmd *cobra.Command, args []string) {
		thresholds := readThresholds()

		runID, err := random.String(8)
		if err != nil {
			fatal("failed to generate run id", err)
		}
		slog.Info("starting analysis run", "run_id", runID, "input", *analyzeInput)
		telemetry.InstrumentPerfStats(cmd.Context())

		source := creatorintel.FileSource{Path: *analyzeInput}
		posts, err := source.Posts(cmd.Context())
		if err != nil {
			fatal("failed to load comment dump", err)
		}

		service := creatorintel.NewService(thresholds)

		t1 := time.Now()
		report, err := service.Analyze(cmd.Context(), posts)
		t2 := time.Now()
		if err != nil {
			fatal("analysis failed", err)
		}
		slog.Info("analysis time", "run_id", runID, "seconds", t2.Sub(t1).Seconds())

		writeCSV(*analyzePostsOut, func(f *os.File) error {
			return creatorintel.WritePostsCSV(f, report.Posts)
		})
		writeCSV(*analyzeCreatorsOut, func(f *os.File) error {
			return creatorintel.WriteCreatorsCSV(f, report.Creators)
		})

		renderCreatorTable(report)
	},
}

func writeCSV(path string, write func(f *os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		fatal("failed to create output file", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		fatal("failed to write output file", err)
	}
	slog.Info("wrote output table", "path", path)
}

func renderCreatorTable(report creatorintel.Report) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"creator", "posts", "passed", "avg EQS", "best EQS", "worst EQS"})
	for _, c := range report.Creators {
		t.AppendRow(table.Row{
			c.CreatorHandle,
			c.PostsAnalyzed,
			c.PostsPassed,
			fmt.Sprintf("%.2f", c.AvgEQS),
			fmt.Sprintf("%.2f", c.BestEQS),
			fmt.Sprintf("%.2f", c.WorstEQS),
		})
	}
	t.Render()
}
