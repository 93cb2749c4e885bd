package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "careerbot",
		Short:        "Career guidance chatbot web service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	addServeFlags(root)

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newAskCmd())
	return root
}
