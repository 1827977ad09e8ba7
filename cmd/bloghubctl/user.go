package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bloghub/internal/domain"
	"bloghub/internal/repository/userrepo"
	"bloghub/internal/service/userservice"
)

var (
	userEmail    string
	userPassword string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Gerencia usuários",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Cria um usuário",
	Long: `Cria um usuário com o papel informado. É a forma de criar o primeiro ADMIN,
já que o registro pela API sempre cria usuários com papel USER.

Exemplo:
  bloghubctl user create --email admin@example.com --password s3cret --role ADMIN`,
	RunE: runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "e-mail do usuário (obrigatório)")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "senha do usuário (obrigatório)")
	userCreateCmd.Flags().StringVar(&userRole, "role", string(domain.RoleUser), "papel: ADMIN ou USER")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	role := domain.Role(strings.ToUpper(userRole))
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return fmt.Errorf("papel inválido: %s", userRole)
	}

	repo := userrepo.NewUserRepository(db, cfg.DBTimeout, lg)
	// Sessões não são usadas no registro.
	svc := userservice.NewService(repo, nil, lg)

	user, err := svc.Register(cmd.Context(), domain.UserRegistration{Email: userEmail, Password: userPassword}, role)
	if err != nil {
		return fmt.Errorf("criar usuário: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(user)
}
