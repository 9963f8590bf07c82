// Root command for the build-catalog CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforge/catalog/internal/export"
	"github.com/studyforge/catalog/internal/logging"
	"github.com/studyforge/catalog/internal/paths"
	"github.com/studyforge/catalog/pkg/catalog"
)

// Exit codes: success, validation errors present, I/O or export failure.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir  string
	flagContentDir string
	flagOut        string
	flagDB         string
	flagStrict     bool
	flagCheckLinks bool
	flagJSON       bool
	flagVerbose    bool
)

// log and cfg are initialized by PersistentPreRunE for all subcommands.
var (
	log *zap.SugaredLogger
	cfg *buildConfig
)

var rootCmd = &cobra.Command{
	Use:     "build-catalog",
	Short:   "Build the educational content catalog",
	Version: catalog.Version,
	Long: `build-catalog ingests authored topic records, validates them against
the catalog schema, registers the survivors in authoring order, derives the
category and search index, audits resource links, and exports a versioned
snapshot for the presentation and search services.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logging.New(flagVerbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		cfg, err = loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
	RunE: runBuild,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.catalog)")
	pf.StringVar(&flagContentDir, "content-dir", "", "topic content directory (default: $(CWD)/content)")
	pf.BoolVar(&flagStrict, "strict", false, "treat audit findings as build failures")
	pf.BoolVar(&flagCheckLinks, "check-links", false, "probe resource URLs for reachability")
	pf.BoolVar(&flagJSON, "json", false, "print the build report as JSON")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&flagOut, "out", "", "snapshot destination (default: $(CWD)/catalog.json)")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "also write a SQLite snapshot to this path")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(searchCmd)
}

// runBuild executes the full pipeline and, when nothing blocks, writes the
// snapshot artifacts.
func runBuild(cmd *cobra.Command, args []string) error {
	result, err := runPipeline(cmd.Context())
	if err != nil {
		return err
	}
	report := result.Report

	if flagJSON {
		printJSON(report)
	} else {
		report.WriteSummary(os.Stdout, effectiveStrict())
	}

	if report.Blocking(effectiveStrict()) {
		os.Exit(exitUserError)
	}

	out, err := paths.ResolveOut(flagOut, cfg.Out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve out path:", err)
		os.Exit(exitSysError)
	}
	if err := export.WriteJSON(result.Snapshot, out); err != nil {
		fmt.Fprintln(os.Stderr, "export snapshot:", err)
		os.Exit(exitSysError)
	}
	log.Infow("snapshot written", "path", out, "topics", result.Registry.Len())

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DB
	}
	if dbPath != "" {
		if err := export.WriteSQLite(result.Snapshot, dbPath); err != nil {
			fmt.Fprintln(os.Stderr, "export snapshot db:", err)
			os.Exit(exitSysError)
		}
		log.Infow("snapshot db written", "path", dbPath)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal report:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(data))
}
