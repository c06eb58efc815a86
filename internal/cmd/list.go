package cmd

import (
	_ "embed"
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "list [flags] [filename]",
		Short: "List the code blocks of a document",
		Long:  listHelp,
		Args:  checkargs,
		RunE:  func(cmd *cobra.Command, args []string) error {
			all, err := blocks(source(args), opts)
			if err != nil {
				return err
			}

			tbl := table.New("Index", "Lang", "Lines", "Count", "File", "Meta").WithWriter(cmd.OutOrStdout())

			naming := opts.naming()

			for _, block := range all {
				tbl.AddRow(
					block.Index,
					langLabel(block.Lang),
					fmt.Sprintf("%d-%d", block.StartLine, block.EndLine),
					len(block.Lines),
					naming.Name(block.Index),
					block.Meta.String(),
				)
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}
}
