package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/algebra/translate"
	"github.com/algebralab/algebralab/internal/history/store"
	"github.com/algebralab/algebralab/internal/lab/service"
	"github.com/algebralab/algebralab/pkg/core/config"
	"github.com/algebralab/algebralab/pkg/core/logging"
)

var (
	cfgFile    string
	verbose    bool
	jsonOutput bool
	noHistory  bool
	precision  int

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "algebralab",
	Short: "algebralab - algebra teaching toolkit",
	Long: `algebralab works through the exercises of a first algebra course:
synthetic division, complex numbers, linear equations, rearranging
formulas, worksheets, notable products, number classification and
translating between words and algebra.

Every tool is available as a command, in the terminal UI (algebralab tui)
and over gRPC and WebSocket (algebralab serve).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the command tree and prints a failed command's error inline
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $ALGEBRALAB_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record calculations")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", -1, "decimal places (default from config)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	logging.Configure(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       level,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})
	return nil
}

// newService builds the service from the loaded configuration. The caller
// closes it.
func newService() (*service.Service, error) {
	cfg := appConfig
	if cfg == nil {
		cfg = config.Default()
	}

	var history store.Store
	if cfg.HistoryEnabled() && !noHistory {
		st, err := store.New(store.Config{Path: cfg.History.Path, Capacity: cfg.History.Capacity})
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		history = st
	}

	tr := translate.New()
	if cfg.Translate.PatternsFile != "" {
		if err := tr.LoadFile(cfg.Translate.PatternsFile); err != nil {
			if history != nil {
				history.Close()
			}
			return nil, fmt.Errorf("load patterns: %w", err)
		}
	}

	p := cfg.Format.Precision
	if precision >= 0 {
		p = precision
	}

	return service.New(service.Config{
		Precision:  p,
		History:    history,
		Translator: tr,
	}), nil
}

// withService runs fn with a fresh service and closes it afterwards
func withService(fn func(svc *service.Service) error) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(svc)
}

// printResult prints resp as JSON with --json, otherwise the text lines
func printResult(w io.Writer, resp interface{}, lines ...string) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, service.Render(err))
}
