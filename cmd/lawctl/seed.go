package main

import (
	"fmt"

	"virtual-lawyer/repository"
	"virtual-lawyer/service"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema, add missing default users and load laws into an empty table",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	data, err := loadSeed()
	if err != nil {
		return err
	}

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

	result, err := service.NewSeeder(auth, repository.NewLawRepository(pool), logger).Seed(ctx, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "users: %d, laws inserted: %d\n", result.Users, result.LawsInserted)
	return nil
}
