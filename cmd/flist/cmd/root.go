package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"flist/internal/instance"
)

var (
	dirFlag  string
	exitFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "flist [dir]",
	Short: "Single-user list manager for the terminal",
	Long: `flist keeps an ordered list of things to get back to: files,
directories, and URLs. Running it opens the interactive view for the
list in the chosen directory (default: the current directory).

Only one interactive view runs per list. Starting a second one does
nothing and exits; adds from other terminals are forwarded to the
running view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exitFlag {
			// The view is the only action here; nothing one-shot to do.
			return nil
		}

		root, err := resolveRoot(chooseDir(dirFlag, cmd.Flags().Changed("dir"), args))
		if err != nil {
			return err
		}

		result, err := instance.AcquireOrForward(root, instance.Options{})
		if err != nil {
			return err
		}

		switch res := result.(type) {
		case instance.Forwarded:
			// A view is already running; nothing to send it.
			return res.Conn.Close()
		case instance.Refused:
			return refusedError(res)
		case instance.Owned:
			return runSession(root, res.Lock)
		default:
			return fmt.Errorf("unexpected lock state %T", result)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", ".", "directory of the list")
	rootCmd.PersistentFlags().BoolVar(&exitFlag, "exit", false, "perform the one-shot action and return without opening the view")
}

// chooseDir picks the list directory: an explicit --dir wins,
// otherwise the positional form is honored.
func chooseDir(dir string, explicit bool, args []string) string {
	if !explicit && len(args) > 0 {
		return args[0]
	}
	return dir
}

func resolveRoot(dir string) (string, error) {
	return filepath.Abs(dir)
}

func refusedError(res instance.Refused) error {
	return fmt.Errorf("another instance locked this list at %s and may still be starting; try again shortly",
		res.TimeLocked.Local().Format("15:04:05"))
}
