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
	var opts replOptions
	cmd := &cobra.Command{
		Use:           "kbchat",
		Short:         "Chat with documents stored in the Gemini file store",
		Long:          "kbchat uploads documents to the Gemini file store and answers questions strictly from the selected documents.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Gemini API key (prompted for interactively when omitted)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "verbose console logging")
	return cmd
}
