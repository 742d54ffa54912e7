package cmd

import (
	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/lab/service"
	"github.com/algebralab/algebralab/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Long: `Start the terminal UI with one tab per tool.

Navigation:
  Tab / Shift+Tab  switch tool
  Up / Down        switch field
  Enter            calculate
  Ctrl+L           clear the output
  Esc, Ctrl+C      quit

The Complex tab converts while you type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			return tui.Run(svc)
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
