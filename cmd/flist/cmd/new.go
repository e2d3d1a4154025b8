package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flist/internal/adapters/filesystem"
	"flist/internal/config"
	"flist/internal/instance"
)

var (
	newMaxArchive  int
	newQuickLaunch string
	newForce       bool
	newClear       bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a list in a directory",
	Long: `Create a list in the chosen directory, writing its
configuration file.

The directory is created when missing. An existing configuration is
only replaced with --force; --clear additionally removes the stored
entries, the archive, and any stale lock.

Examples:
  flist new
  flist -d ~/reading new --max-archive 50
  flist new --quick-launch "exe,md|pdf" --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(dirFlag)
		if err != nil {
			return err
		}

		cfg := config.New(newMaxArchive, config.ParseQuickLaunch(newQuickLaunch))
		if err := filesystem.InitProject(root, cfg, newForce, newClear); err != nil {
			return err
		}

		// The fresh list is ours regardless of leftover lock records.
		lock, err := instance.ForceAcquire(root)
		if err != nil {
			return err
		}

		fmt.Printf("Created list in %s\n", root)
		if exitFlag {
			return lock.Release()
		}
		return runSession(root, lock)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().IntVar(&newMaxArchive, "max-archive", config.DefaultMaxArchive, "number of archived entries to keep")
	newCmd.Flags().StringVar(&newQuickLaunch, "quick-launch", "", `preferred suffix layers, e.g. "exe,md|pdf"`)
	newCmd.Flags().BoolVar(&newForce, "force", false, "replace an existing configuration")
	newCmd.Flags().BoolVar(&newClear, "clear", false, "also remove stored entries, archive, and lock")
}
