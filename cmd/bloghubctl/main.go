// Package main provides bloghubctl, the operator CLI (migrations and user bootstrap).
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bloghub/config"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
)

var (
	cfg *config.Config
	db  *sql.DB
	lg  logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bloghubctl",
	Short: "Operações administrativas do bloghub",
	Long: `bloghubctl aplica migrações e cria usuários diretamente no banco,
usando a mesma configuração (variáveis de ambiente, .env e BLOGHUB_CONFIG) do servidor.`,
	SilenceUsage:      true,
	PersistentPreRunE: connect,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(userCmd)
}

// connect carrega a configuração e abre o banco antes de qualquer subcomando.
func connect(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return err
	}
	lg = logger.NewLogger(cfg.LogLevel)

	db, err = database.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("conectar ao banco: %w", err)
	}
	return nil
}
