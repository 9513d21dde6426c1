package main

import (
	"github.com/spf13/cobra"

	"misakif.uk/internal/catalog"
	"misakif.uk/internal/output"
)

func newListCmd(ui *output.UI) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog projects in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := catalog.Projects()
			ui.Info("%d projects", len(projects))
			return ui.ProjectTable(projects)
		},
	}
}
