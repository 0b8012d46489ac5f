// Command contextcraft runs the context-engineering demos against the
// OpenRouter API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/contextcraft/config"
	"github.com/deepnoodle-ai/contextcraft/demos"
	"github.com/deepnoodle-ai/contextcraft/llm"
	"github.com/deepnoodle-ai/contextcraft/slogger"
)

var (
	modelName string
	logLevel  string
)

func main() {
	root := &cobra.Command{
		Use:   "contextcraft",
		Short: "Context engineering demos for LLM prompting",
		Long: `contextcraft runs a series of context engineering demonstrations.
Each demo sends prompts to a hosted model via OpenRouter and prints the
responses for comparison.

Set OPENROUTER_API_KEY in the environment or in a .env file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			slogger.DefaultLogger = slogger.New(slogger.LevelFromString(logLevel))
			return config.CheckCredentials()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&modelName, "model", "m", "",
		"OpenRouter model to use (e.g. 'openai/gpt-oss-20b:free')")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level to use (debug, info, warn, error)")

	for _, demo := range demos.All() {
		root.AddCommand(demoCommand(demo))
	}
	root.AddCommand(listCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func demoCommand(demo *demos.Demo) *cobra.Command {
	return &cobra.Command{
		Use:   demo.Name,
		Short: demo.Description,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			return demo.Run(cmd.Context(), client)
		},
	}
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		// The credential check is not needed just to list demos
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			for _, demo := range demos.All() {
				fmt.Printf("  %-18s %s\n", demo.Name, demo.Description)
			}
		},
	}
}

func newClient() llm.LLM {
	return config.GetModel(modelName)
}
