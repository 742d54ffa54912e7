package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/algebra/translate"
	"github.com/algebralab/algebralab/internal/lab/service"
)

var (
	translateDirection string
	translatePatterns  string
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate between words and algebra",
	Long: `Translate a phrase into an algebraic expression or back.

Examples:
  algebralab translate "the sum of x and y"
  algebralab translate --direction algebraic "(a + b)^2"
  algebralab translate --patterns my-patterns.yaml "twice n"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTranslateService(func(svc *service.Service) error {
			resp, err := svc.Translate(cmd.Context(), &service.TranslateRequest{
				Direction: translateDirection,
				Input:     strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var translateStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the loaded patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTranslateService(func(svc *service.Service) error {
			tr := svc.Translator()
			stats := tr.Stats()
			patterns := tr.Patterns()

			lines := []string{
				fmt.Sprintf("source:   %s", stats.Source),
				fmt.Sprintf("patterns: %d", stats.Patterns),
			}
			if stats.FileSize > 0 {
				lines = append(lines, fmt.Sprintf("size:     %d bytes", stats.FileSize))
			}
			lines = append(lines, fmt.Sprintf("loaded:   %s", stats.LastUpdate.Format("2006-01-02 15:04:05")), "")
			for _, p := range patterns {
				lines = append(lines, fmt.Sprintf("%3d  %-8s %-40s %s", p.ID, p.Category, p.Natural, p.Algebraic))
			}
			return printResult(cmd.OutOrStdout(), patterns, lines...)
		})
	},
}

var translateWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Translate lines from stdin, reloading the pattern file on change",
	Long: `Read one phrase per line from stdin and translate it. The pattern file
given with --patterns (or translate.patterns_file in the config) is
reloaded whenever it changes on disk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := patternsFile()
		if path == "" {
			return fmt.Errorf("watch needs a pattern file: use --patterns or translate.patterns_file")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return withTranslateService(func(svc *service.Service) error {
			out := cmd.OutOrStdout()
			w := translate.NewWatcher(svc.Translator(), path)
			w.SetOnReload(func(stats translate.Stats, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: reload %s: %v\n", path, err)
					return
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "reloaded %d patterns from %s\n", stats.Patterns, stats.Source)
			})
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()

			return translateLines(ctx, svc, cmd.InOrStdin(), out)
		})
	},
}

func translateLines(ctx context.Context, svc *service.Service, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			resp, err := svc.Translate(ctx, &service.TranslateRequest{Direction: translateDirection, Input: line})
			if err != nil {
				fmt.Fprintln(out, service.Render(err))
				continue
			}
			fmt.Fprintln(out, resp.Output)
		}
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.AddCommand(translateStatsCmd, translateWatchCmd)

	translateCmd.PersistentFlags().StringVarP(&translateDirection, "direction", "d", "natural", "source side: natural or algebraic")
	translateCmd.PersistentFlags().StringVar(&translatePatterns, "patterns", "", "YAML or JSON pattern file")
}

func patternsFile() string {
	if translatePatterns != "" {
		return translatePatterns
	}
	if appConfig != nil {
		return appConfig.Translate.PatternsFile
	}
	return ""
}

// withTranslateService is withService with --patterns applied
func withTranslateService(fn func(svc *service.Service) error) error {
	return withService(func(svc *service.Service) error {
		if translatePatterns != "" {
			if err := svc.Translator().LoadFile(translatePatterns); err != nil {
				return fmt.Errorf("load patterns: %w", err)
			}
		}
		return fn(svc)
	})
}
