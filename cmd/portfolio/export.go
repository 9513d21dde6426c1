package main

import (
	"github.com/spf13/cobra"

	"misakif.uk/internal/catalog"
	"misakif.uk/internal/export"
	"misakif.uk/internal/output"
)

func newExportCmd(ui *output.UI) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Write the catalog to projects.json or projects.yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			path, err := export.Write(args[0], f, catalog.Projects())
			if err != nil {
				ui.Error("export failed")
				return err
			}

			ui.Success("Wrote %d projects to %s", catalog.Len(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
