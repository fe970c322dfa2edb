package main

import (
	"fmt"

	"nirman/internal/adapter/persistence/repository"
	"nirman/internal/infrastructure/security"
	"nirman/internal/usecase"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage portal users",
}

var userInput usecase.RegisterUserInput

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a portal user with a bcrypt password hash",
	Long: `Create a portal user.

Roles: Admin, Data Entry Operator, Technical Approver, Administrative Approver,
Tender Manager, Work Order Manager, Progress Monitor, Viewer.`,
	Args: cobra.NoArgs,
	RunE: runUsersAdd,
}

func init() {
	f := usersAddCmd.Flags()
	f.StringVar(&userInput.Username, "username", "", "Login name (stored lowercased)")
	f.StringVar(&userInput.Name, "name", "", "Display name")
	f.StringVar(&userInput.Email, "email", "", "Email address")
	f.StringVar(&userInput.Department, "department", "", "Department")
	f.StringVar(&userInput.Role, "role", "", "Role name")
	f.StringVar(&userInput.Password, "password", "", "Initial password (min 8 characters)")
	for _, name := range []string{"username", "name", "role", "password"} {
		_ = usersAddCmd.MarkFlagRequired(name)
	}

	usersCmd.AddCommand(usersAddCmd)
}

func runUsersAdd(cmd *cobra.Command, _ []string) error {
	ctx, cancel, cfg, ddb, err := connect(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	users := usecase.NewUserUseCase(
		repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable),
		nil,
		security.NewBcryptHasher(0),
	)
	u, err := users.Register(ctx, userInput)
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s) id=%s\n", u.Username, u.Role, u.ID)
	return nil
}
