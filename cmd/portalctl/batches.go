package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/yukikurage/project-showcase-api/internal/database"
	"github.com/yukikurage/project-showcase-api/internal/dto"
	"github.com/yukikurage/project-showcase-api/internal/services"
)

// defaultBatches are seeded when no file is given
var defaultBatches = []dto.CreateBatchRequest{
	{BatchID: "ISE202601", Batch: "2022-2026", Department: "Information Science and Engineering", Year: 2026, TotalStudents: 60, Description: "ISE Batch 01 - 2022-2026"},
	{BatchID: "ISE202602", Batch: "2022-2026", Department: "Information Science and Engineering", Year: 2026, TotalStudents: 60, Description: "ISE Batch 02 - 2022-2026"},
	{BatchID: "ISE202603", Batch: "2022-2026", Department: "Information Science and Engineering", Year: 2026, TotalStudents: 55, Description: "ISE Batch 03 - 2022-2026"},
}

// seedBatches creates the batches listed in file, or the default ones.
// Batches that already exist are left untouched.
func (cli *commandLine) seedBatches(file string) error {
	ctx := context.Background()

	batches := defaultBatches
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		batches = nil
		if err := json.Unmarshal(raw, &batches); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
	}

	admin, err := cli.firstAdmin(ctx)
	if err != nil {
		return err
	}

	var created int
	for _, req := range batches {
		batch, err := cli.svc.Batches.Create(ctx, req.ToInput(admin.ID))
		if errors.Is(err, services.ErrDuplicateBatch) {
			fmt.Fprintf(cli.out, "- %s: already exists, skipped\n", req.BatchID)
			continue
		}
		if err != nil {
			return fmt.Errorf("batch %s: %w", req.BatchID, err)
		}
		created++
		fmt.Fprintf(cli.out, "- %s: %s (%d students)\n", batch.BatchID, batch.Department, batch.TotalStudents)
	}

	fmt.Fprintf(cli.out, "%d of %d batches created\n", created, len(batches))
	return nil
}

func (cli *commandLine) migrate() error {
	if err := database.MigrateDatabase(cli.db, cli.log); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "database migrated")
	return nil
}
