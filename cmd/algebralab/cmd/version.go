package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Info()
		return printResult(cmd.OutOrStdout(), info,
			fmt.Sprintf("algebralab v%s", info.Version),
			fmt.Sprintf("  Git Commit: %s", info.GitCommit),
			fmt.Sprintf("  Build Date: %s", info.BuildDate),
			fmt.Sprintf("  Go Version: %s", info.GoVersion),
			fmt.Sprintf("  OS/Arch:    %s", info.Platform),
		)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
