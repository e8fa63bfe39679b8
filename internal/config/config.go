// Package config loads and validates bytesradar's option bag: defaults,
// an optional YAML config file, and environment overrides, following the
// teacher's LoadConfig/Settings split (a file-backed config plus an
// env-var-backed settings layer) adapted to a single AnalyzeOptions target.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bytesradar/bytesradar/internal/core"
)

//go:embed options.schema.json
var optionsSchemaData []byte

// Options embeds the core's analysis options plus CLI-only concerns
// (output format, verbosity) that core never needs to know about.
type Options struct {
	core.AnalyzeOptions `yaml:",inline"`

	OutputFormat string `yaml:"output_format"` // text|json|yaml|table
	Verbose      bool   `yaml:"verbose"`
}

// fileDocument is the on-disk shape of .bytesradar.yml: a subset of
// Options expressed as plain, yaml-friendly fields, merged over defaults
// rather than unmarshaled directly into core.AnalyzeOptions (whose
// time.Duration and map fields don't round-trip cleanly through yaml tags
// without custom marshaling).
type fileDocument struct {
	IgnoreHidden     *bool    `yaml:"ignore_hidden"`
	IgnoreGitignore  *bool    `yaml:"ignore_gitignore"`
	MaxFileSize      *uint64  `yaml:"max_file_size"`
	MinFileSize      *uint64  `yaml:"min_file_size"`
	IncludeTests     *bool    `yaml:"include_tests"`
	IncludeDocs      *bool    `yaml:"include_docs"`
	IncludeHidden    *bool    `yaml:"include_hidden"`
	CountGenerated   *bool    `yaml:"count_generated"`
	IncludePattern   *string  `yaml:"include_pattern"`
	ExcludePattern   *string  `yaml:"exclude_pattern"`
	AggressiveFilter *bool    `yaml:"aggressive_filter"`
	IgnoreWhitespace *bool    `yaml:"ignore_whitespace"`
	MaxLineLength    *uint64  `yaml:"max_line_length"`
	TimeoutSeconds   *int     `yaml:"timeout_seconds"`
	OutputFormat     *string  `yaml:"output_format"`
	Verbose          *bool    `yaml:"verbose"`
}

// Load reads an optional .bytesradar.yml from dir, validates it against the
// embedded JSON Schema, and merges it over DefaultAnalyzeOptions. A missing
// file is not an error — same contract as the teacher's LoadConfig.
func Load(dir string) (*Options, error) {
	opts := &Options{AnalyzeOptions: core.DefaultAnalyzeOptions(), OutputFormat: "text"}

	path := dir + "/.bytesradar.yml"
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := validateAgainstSchema(data); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	applyFileDocument(opts, &doc)

	return opts, nil
}

func applyFileDocument(opts *Options, doc *fileDocument) {
	setBool(&opts.IgnoreHidden, doc.IgnoreHidden)
	setBool(&opts.IgnoreGitignore, doc.IgnoreGitignore)
	setU64(&opts.MaxFileSize, doc.MaxFileSize)
	setU64(&opts.MinFileSize, doc.MinFileSize)
	setBool(&opts.IncludeTests, doc.IncludeTests)
	setBool(&opts.IncludeDocs, doc.IncludeDocs)
	setBool(&opts.IncludeHidden, doc.IncludeHidden)
	setBool(&opts.CountGenerated, doc.CountGenerated)
	if doc.IncludePattern != nil {
		opts.IncludePattern = *doc.IncludePattern
	}
	if doc.ExcludePattern != nil {
		opts.ExcludePattern = *doc.ExcludePattern
	}
	setBool(&opts.AggressiveFilter, doc.AggressiveFilter)
	setBool(&opts.IgnoreWhitespace, doc.IgnoreWhitespace)
	setU64(&opts.MaxLineLength, doc.MaxLineLength)
	if doc.TimeoutSeconds != nil {
		opts.Timeout = time.Duration(*doc.TimeoutSeconds) * time.Second
	}
	if doc.OutputFormat != nil {
		opts.OutputFormat = *doc.OutputFormat
	}
	setBool(&opts.Verbose, doc.Verbose)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setU64(dst *uint64, src *uint64) {
	if src != nil {
		*dst = *src
	}
}

func validateAgainstSchema(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	// jsonschema validates against JSON-shaped data (map[string]interface{}
	// with string keys); yaml.v3 already decodes mappings that way for
	// scalar-keyed documents, so no extra conversion step is needed here.
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("options.schema.json", stringsReader(optionsSchemaData)); err != nil {
		return err
	}
	schema, err := compiler.Compile("options.schema.json")
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

func stringsReader(b []byte) *strings.Reader {
	return strings.NewReader(string(b))
}

// LoadToken resolves the auth token from BRADAR_TOKEN via viper's env
// binding, the same mechanism the teacher uses for its STACK_ANALYZER_*
// variables, generalized here to a single bound key.
func LoadToken() string {
	v := viper.New()
	v.SetEnvPrefix("BRADAR")
	_ = v.BindEnv("token", "BRADAR_TOKEN")
	return v.GetString("token")
}

// parseBoolEnv mirrors the teacher's settings.go env-parsing idiom
// (strings.ToLower(v) == "true") for the handful of boolean env overrides
// bytesradar also recognizes outside of viper's binding (kept separate from
// LoadToken because these are core.AnalyzeOptions fields, not a single
// string).
func parseBoolEnv(name string, dflt bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return dflt
	}
	return strings.ToLower(v) == "true"
}

func parseUintEnv(name string, dflt uint64) uint64 {
	v := os.Getenv(name)
	if v == "" {
		return dflt
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return dflt
	}
	return n
}

// ApplyEnvironment overlays BRADAR_* environment variables onto opts,
// taking precedence over the config file, mirroring the teacher's
// LoadSettingsFromEnvironment layering (defaults -> file -> env -> flags).
func ApplyEnvironment(opts *Options) {
	opts.AuthToken = LoadToken()
	opts.AggressiveFilter = parseBoolEnv("BRADAR_AGGRESSIVE", opts.AggressiveFilter)
	opts.Detailed = parseBoolEnv("BRADAR_DETAILED", opts.Detailed)
	opts.MaxFileSize = parseUintEnv("BRADAR_MAX_FILE_SIZE", opts.MaxFileSize)
}
