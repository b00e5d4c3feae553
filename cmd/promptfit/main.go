// Command promptfit runs the prompt optimizer from the command line.
//
// It reads prompt components from a YAML request file, applies a policy,
// and prints what the optimizer kept, trimmed, and dropped:
//
//	promptfit optimize request.yaml --model claude-sonnet-4
//	promptfit optimize request.yaml --policy policy.toml --render
//	promptfit schema > policy.schema.json
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:           "promptfit",
		Short:         "Token-budgeted prompt assembly",
		Long:          "promptfit fits a system prompt, user message, reference documents, and conversation history into a model's context window.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newOptimizeCmd())
	rootCmd.AddCommand(newSchemaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
