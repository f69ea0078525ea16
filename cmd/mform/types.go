package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/widgets"
)

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the field types a form file may declare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			title := color.New(color.FgCyan, color.Bold)
			widgetTypes := map[model.FieldType]bool{}
			for _, typ := range widgets.NewRegistry().Types() {
				widgetTypes[typ] = true
			}

			title.Fprintln(out, "Field types:")
			for _, typ := range model.FieldTypes() {
				suffix := ""
				if widgetTypes[typ] {
					suffix = " (widget)"
				}
				if _, err := fmt.Fprintf(out, "  %s%s\n", typ, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
