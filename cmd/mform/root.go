package main

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mform",
		Short: "Render CMS form declarations to themed HTML",
		Long: `mform renders declarative form files (YAML or JSON) through the
form builder and theme templates, the same way a CMS module would at runtime.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default ./mform.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newRenderCommand(defaultPromptDriver))
	root.AddCommand(newTypesCommand())
	return root
}
