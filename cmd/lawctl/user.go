package main

import (
	"fmt"

	"virtual-lawyer/models"
	"virtual-lawyer/repository"
	"virtual-lawyer/service"

	"github.com/spf13/cobra"
)

var (
	userName     string
	userPassword string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user, or reset the password and role of an existing one",
	Long:  `Stores the password as a bcrypt hash. Roles are advocate or client.`,
	Args:  cobra.NoArgs,
	RunE:  runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVarP(&userName, "username", "u", "", "Login name")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "Plaintext password")
	userCreateCmd.Flags().StringVarP(&userRole, "role", "r", string(models.RoleClient), "advocate or client")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	role, ok := models.ParseRole(userRole)
	if !ok {
		return fmt.Errorf("unknown role %q", userRole)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	pool, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	auth := service.NewAuthService(
		service.AuthWithUserStore(repository.NewUserRepository(pool)),
		service.AuthWithSessionStore(repository.NewSessionRepository(pool)),
		service.AuthWithLogger(logger),
	)

	user, err := auth.EnsureUser(ctx, userName, userPassword, role)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ User saved successfully!\n")
	fmt.Fprintf(out, "   ID: %s\n", user.ID)
	fmt.Fprintf(out, "   Username: %s\n", user.Username)
	fmt.Fprintf(out, "   Role: %s\n", user.Role)
	return nil
}
