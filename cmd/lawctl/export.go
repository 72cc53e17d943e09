package main

import (
	"fmt"
	"os"

	"virtual-lawyer/repository"
	"virtual-lawyer/service"
	"virtual-lawyer/storage"

	"github.com/spf13/cobra"
)

var (
	exportOut   string
	exportStore bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the query history as CSV",
	Long: `Writes created_at,user_text,matched_section,score rows, newest first.
Prints to stdout unless --out or --store is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the CSV to this file")
	exportCmd.Flags().BoolVar(&exportStore, "store", false, "Save the CSV to the configured storage backend")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	pool, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	opts := []service.HistoryServiceOption{
		service.HistoryWithQueryLogStore(repository.NewQueryLogRepository(pool)),
		service.HistoryWithLogger(logger),
	}

	if exportStore {
		objects, err := storage.NewStorageFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		history := service.NewHistoryService(append(opts, service.HistoryWithStorage(objects))...)

		result, err := history.SaveExport(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d rows to %s\n", result.Rows, result.StoragePath)
		return nil
	}

	history := service.NewHistoryService(opts...)
	w := cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	rows, err := history.ExportCSV(ctx, w)
	if err != nil {
		return err
	}
	if exportOut != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", rows, exportOut)
	}
	return nil
}
