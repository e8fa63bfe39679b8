package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/bytesradar/bytesradar/internal/config"
	"github.com/bytesradar/bytesradar/internal/core"
	"github.com/bytesradar/bytesradar/internal/metrics"
	"github.com/bytesradar/bytesradar/internal/render"
	"github.com/bytesradar/bytesradar/internal/spec"
	"github.com/bytesradar/bytesradar/internal/util"
)

var analyzeFlags struct {
	maxFileSize    int64
	include        string
	exclude        string
	aggressive     bool
	timeoutSeconds int
	format         string
	token          string
	parallel       bool
	detailed       bool
	enableMetrics  bool
	logLevel       string
	logFormat      string
	logFile        string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <reference>",
	Short: "Analyze a remote repository reference",
	Long: `Analyze accepts owner/repo[@ref], a full URL to a supported hosting
platform, or a direct archive URL, and prints a per-language line-count
breakdown.

Examples:
  bytesradar analyze golang/go
  bytesradar analyze golang/go@release-branch.go1.22
  bytesradar analyze https://gitlab.com/owner/repo
  bytesradar analyze --format json --aggressive owner/repo`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.Int64Var(&analyzeFlags.maxFileSize, "max-file-size", 0, "reject files larger than this many bytes (0 = unbounded)")
	f.StringVar(&analyzeFlags.include, "include", "", "glob pattern; only matching paths are analyzed")
	f.StringVar(&analyzeFlags.exclude, "exclude", "", "glob pattern; matching paths are skipped")
	f.BoolVar(&analyzeFlags.aggressive, "aggressive", false, "enable stricter binary/minified/size heuristics")
	f.IntVar(&analyzeFlags.timeoutSeconds, "timeout", 30, "HTTP timeout in seconds")
	f.StringVar(&analyzeFlags.format, "format", "text", "output format: text|json|yaml|table")
	f.StringVar(&analyzeFlags.token, "token", "", "auth token (falls back to BRADAR_TOKEN)")
	f.BoolVar(&analyzeFlags.parallel, "parallel", false, "use the experimental parallel worker pool")
	f.BoolVar(&analyzeFlags.detailed, "detailed", false, "retain per-file metrics in the result")
	f.BoolVar(&analyzeFlags.enableMetrics, "metrics", false, "record Prometheus metrics for this run")

	f.StringVar(&analyzeFlags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: BRADAR_LOG_LEVEL or warn)")
	f.StringVar(&analyzeFlags.logFormat, "log-format", "", "log format: text or json (default: BRADAR_LOG_FORMAT or text)")
	f.StringVar(&analyzeFlags.logFile, "log-file", "", "log file path (default: BRADAR_LOG_FILE or stderr)")
}

// configureLogging builds the process logger from BRADAR_LOG_* environment
// variables, overridden by this command's --log-* flags, mirroring the
// teacher's configureLogging(cmd)/settings.ConfigureLogger split.
func configureLogging() *slog.Logger {
	settings := config.LoadLogSettingsFromEnvironment()
	if analyzeFlags.logLevel != "" {
		settings = config.ApplyLogLevelOverride(settings, analyzeFlags.logLevel)
	}
	if analyzeFlags.logFormat != "" {
		settings.Format = analyzeFlags.logFormat
	}
	if analyzeFlags.logFile != "" {
		settings.File = analyzeFlags.logFile
	}
	return settings.Configure()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	reference := args[0]
	logger := configureLogging()

	if analyzeFlags.format != "" {
		if err := util.ValidateOutputFormat(analyzeFlags.format); err != nil {
			logger.Error("invalid output format", "format", analyzeFlags.format, "error", err)
			return &exitError{code: 2, err: err}
		}
		analyzeFlags.format = util.NormalizeFormat(analyzeFlags.format)
	}

	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return &exitError{code: 2, err: err}
	}
	config.ApplyEnvironment(cfg)

	applyFlags(cmd, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	progressSink := render.NewProgress(os.Stderr)
	var metricsSink core.MetricsSink = core.NullMetricsSink{}
	if analyzeFlags.enableMetrics {
		reg := prometheus.NewRegistry()
		metricsSink = metrics.NewRecorder(reg)
	}

	analyzeFn := core.Analyze
	if cfg.Parallel {
		analyzeFn = core.AnalyzeParallel
	}

	logger.Info("starting analysis", "reference", reference, "parallel", cfg.Parallel, "aggressive", cfg.AggressiveFilter)

	analysis, aerr := analyzeFn(ctx, reference, cfg.AnalyzeOptions, progressSink, metricsSink)
	if aerr != nil {
		logger.Error("analysis failed", "reference", reference, "kind", aerr.Kind.String(), "error", aerr)
		return &exitError{code: exitCodeForKind(aerr.Kind), err: aerr}
	}

	s := analysis.Summary()
	logger.Info("analysis complete", "reference", reference, "files", s.TotalFiles, "total_lines", s.TotalLines, "primary_language", s.PrimaryLanguage)

	output, ferr := formatOutput(analysis, cfg.OutputFormat)
	if ferr != nil {
		logger.Error("failed to format output", "format", cfg.OutputFormat, "error", ferr)
		return &exitError{code: 1, err: ferr}
	}
	fmt.Println(output)
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Options) {
	if analyzeFlags.maxFileSize > 0 {
		cfg.MaxFileSize = uint64(analyzeFlags.maxFileSize)
	}
	if analyzeFlags.include != "" {
		cfg.IncludePattern = analyzeFlags.include
	}
	if analyzeFlags.exclude != "" {
		cfg.ExcludePattern = analyzeFlags.exclude
	}
	if analyzeFlags.aggressive {
		cfg.AggressiveFilter = true
	}
	if cmd.Flags().Changed("timeout") && analyzeFlags.timeoutSeconds > 0 {
		cfg.Timeout = time.Duration(analyzeFlags.timeoutSeconds) * time.Second
	}
	if cmd.Flags().Changed("format") && analyzeFlags.format != "" {
		cfg.OutputFormat = analyzeFlags.format
	}
	if analyzeFlags.token != "" {
		cfg.AuthToken = analyzeFlags.token
	}
	if analyzeFlags.parallel {
		cfg.Parallel = true
	}
	if analyzeFlags.detailed {
		cfg.Detailed = true
	}
}

func formatOutput(analysis *core.ProjectAnalysis, format string) (string, error) {
	switch format {
	case "table":
		return render.Table(analysis), nil
	case "json":
		b, err := json.MarshalIndent(analysisReportOf(analysis), "", "  ")
		return string(b), err
	case "yaml":
		b, err := yaml.Marshal(analysisReportOf(analysis))
		return string(b), err
	default:
		return render.Table(analysis), nil
	}
}

// analysisReportOf is the serializer-facing shape (§6): ProjectAnalysis
// plus its derived Summary, flattened into plain fields so JSON/YAML
// output is stable regardless of internal map iteration order.
func analysisReportOf(analysis *core.ProjectAnalysis) map[string]interface{} {
	s := analysis.Summary()
	langs := make([]map[string]interface{}, 0, len(analysis.LanguageAggregates))
	for _, agg := range analysis.SortedLanguages() {
		langs = append(langs, map[string]interface{}{
			"language":      agg.DisplayName,
			"files":         agg.FileCount,
			"total_lines":   agg.TotalLines,
			"code_lines":    agg.CodeLines,
			"comment_lines": agg.CommentLines,
			"blank_lines":   agg.BlankLines,
			"size_bytes":    agg.SizeBytes,
			"share":         agg.Share(s.TotalLines),
			"code_ratio":    agg.CodeRatio(),
			"doc_ratio":     agg.DocRatio(),
		})
	}
	return map[string]interface{}{
		"schema_version": spec.SchemaVersion,
		"project_name":   analysis.ProjectName,
		"summary": map[string]interface{}{
			"total_files":                 s.TotalFiles,
			"total_lines":                 s.TotalLines,
			"total_code_lines":            s.TotalCodeLines,
			"total_comment_lines":         s.TotalCommentLines,
			"total_blank_lines":           s.TotalBlankLines,
			"total_size_bytes":            s.TotalSizeBytes,
			"language_count":              s.LanguageCount,
			"primary_language":            s.PrimaryLanguage,
			"overall_complexity_ratio":    s.OverallComplexityRatio,
			"overall_documentation_ratio": s.OverallDocumentationRatio,
		},
		"language_statistics": langs,
	}
}
