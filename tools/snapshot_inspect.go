package main

import (
	"complaint-triage/domain"
	"complaint-triage/repositories"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	flag.Parse()

	// Read-only so it can run next to a live triage process
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	snapshots := repositories.NewSnapshotRepository(db, logger)
	complaints := repositories.NewComplaintRepository(db, logger)

	infos, err := snapshots.List(ctx)
	if err != nil {
		log.Fatal("Error while listing snapshots: ", err)
	}
	table := newTable([]string{"Version", "Trained at", "Samples", "Size", "Active"})
	for _, info := range infos {
		active := ""
		if info.Active {
			active = "*"
		}
		trainedAt := "unreadable"
		if !info.TrainedAt.IsZero() {
			trainedAt = info.TrainedAt.Format("2006-01-02 15:04:05")
		}
		table.Append([]string{
			strconv.FormatUint(info.Version, 10),
			trainedAt,
			strconv.Itoa(info.SampleCount),
			fmt.Sprintf("%.1f KiB", float64(info.Size)/1024),
			active,
		})
	}
	fmt.Println("SNAPSHOTS")
	table.Render()

	summary, err := complaints.Summary(ctx)
	if err != nil {
		log.Fatal("Error while reading complaints: ", err)
	}
	table = newTable([]string{"Category", "Complaints"})
	for _, category := range append([]domain.Category{domain.Uncategorized}, domain.Categories...) {
		table.Append([]string{string(category), strconv.Itoa(summary.ByCategory[category])})
	}
	fmt.Printf("\nCOMPLAINTS (%d, %d feedbacks, %d corrections)\n", summary.Total, summary.Feedback, summary.Corrections)
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
