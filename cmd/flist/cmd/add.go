package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flist/internal/adapters/filesystem"
	"flist/internal/application/commands"
	"flist/internal/config"
	"flist/internal/control"
	"flist/internal/instance"
)

var addMetadata []string

var addCmd = &cobra.Command{
	Use:   "add <name> <link>",
	Short: "Add an entry to the top of the list",
	Long: `Add an entry to the list.

When an interactive view is already running for this list, the entry is
handed to it and shows up there. Otherwise the entry is written
directly and the interactive view opens, unless --exit is given.

Examples:
  flist add "weekly report" ~/docs/report.md
  flist add "Go blog" https://go.dev/blog --exit
  flist add "design notes" ~/notes -m draft -m q3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, link := args[0], args[1]

		root, err := resolveRoot(dirFlag)
		if err != nil {
			return err
		}

		result, err := instance.AcquireOrForward(root, instance.Options{})
		if err != nil {
			return err
		}

		switch res := result.(type) {
		case instance.Forwarded:
			return control.Forward(res.Conn, control.InsertRequest{
				Name:     name,
				Link:     link,
				Metadata: addMetadata,
			})

		case instance.Refused:
			return refusedError(res)

		case instance.Owned:
			cfg, err := config.Load(root)
			if err != nil {
				res.Lock.Release()
				return err
			}
			repo := filesystem.NewRepository(root, cfg.MaxArchive)
			addCmd := commands.NewAddEntryCommand(repo, name, link, addMetadata)
			if _, err := addCmd.Execute(context.Background()); err != nil {
				res.Lock.Release()
				return err
			}
			if exitFlag {
				return res.Lock.Release()
			}
			return runSession(root, res.Lock)

		default:
			return fmt.Errorf("unexpected lock state %T", result)
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArrayVarP(&addMetadata, "metadata", "m", nil, "tag to attach to the entry (repeatable)")
}
