package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solvia-inc/solvia/internal/interfaces/cli/migrate"
	"github.com/solvia-inc/solvia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solvia",
		Short: "Solvia - product catalog backend",
		Long:  `Solvia serves the product catalog: solutions, their classification domains and sectors, and the benefits, features and problems associated with them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
