package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bloghub/internal/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|version|redo|reset]",
	Short: "Executa as migrações embutidas",
	Long: `Executa um comando do goose sobre as migrações embutidas no binário,
escolhendo o diretório de acordo com DB_DRIVER.

Exemplo:
  bloghubctl migrate up
  bloghubctl migrate status`,
	Args:      cobra.RangeArgs(0, 2),
	ValidArgs: []string{"up", "down", "status", "version", "redo", "reset", "up-to", "down-to"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		var rest []string
		if len(args) > 0 {
			command, rest = args[0], args[1:]
		}

		if err := database.Migrate(cmd.Context(), db, cfg.DBDriver, command, rest...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "goose %s success\n", command)
		return nil
	},
}
