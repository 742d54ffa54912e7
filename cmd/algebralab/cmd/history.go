package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/lab/service"
)

var (
	historyLimit  int
	historyFormat string
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show, clear or export the calculation history",
	Long: `Every calculation is recorded in a history book per tool; each book
keeps the most recent entries (history.capacity, default 10).

Books: division, complex, linear, formula, isolate, worksheet,
notable-products, classify, translate`,
}

var historyListCmd = &cobra.Command{
	Use:   "list [book]",
	Short: "List entries, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.History(cmd.Context(), &service.HistoryRequest{Book: bookArg(args), Limit: historyLimit})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear [book]",
	Short: "Remove the entries of one book or of all books",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.History(cmd.Context(), &service.HistoryRequest{Book: bookArg(args), Clear: true})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, fmt.Sprintf("%d entries removed", resp.Cleared))
		})
	},
}

var historyBooksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the books and their entry counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			st, err := svc.RequireHistory()
			if err != nil {
				return err
			}
			books, err := st.Books(cmd.Context())
			if err != nil {
				return err
			}
			names := make([]string, 0, len(books))
			for name := range books {
				names = append(names, name)
			}
			sort.Strings(names)
			lines := make([]string, 0, len(names))
			for _, name := range names {
				lines = append(lines, fmt.Sprintf("%-18s %d", name, books[name]))
			}
			return printResult(cmd.OutOrStdout(), books, lines...)
		})
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export [book]",
	Short: "Export entries as JSON or YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			st, err := svc.RequireHistory()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if historyOutput != "" && historyOutput != "-" {
				f, err := os.Create(historyOutput)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return st.Export(cmd.Context(), bookArg(args), historyFormat, w)
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd, historyBooksCmd, historyExportCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries (0 = all)")
	historyExportCmd.Flags().StringVarP(&historyFormat, "format", "f", "json", "json or yaml")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "output file (default: stdout)")
}

func bookArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
