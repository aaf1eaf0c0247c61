package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"tienda-live/domain"
	"tienda-live/infrastructure/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Prints the promotions of one store and, with -redemptions, every redemption of each code.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	store := flag.String("store", "", "Store id")
	withRedemptions := flag.Bool("redemptions", false, "Also list redemptions")
	flag.Parse()

	if *store == "" {
		log.Fatal("-store is required")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := storage.NewPromotionRepository(db, logs.GetLoggerFromLevel(slog.LevelWarn), 1)
	promotions, err := repo.ListByStore(ctx, domain.StoreID(*store))
	if err != nil {
		log.Fatal(err)
	}

	table := newTable("ID", "Title", "Code", "Active", "Discount", "Usage", "Window")
	for _, p := range promotions {
		table.Append([]string{
			shortID(string(p.ID)),
			p.Title,
			p.Code,
			strconv.FormatBool(p.Active),
			discount(p),
			usage(p),
			window(p),
		})
	}
	table.Render()

	if !*withRedemptions {
		return
	}
	fmt.Println()
	redemptions := newTable("Promotion", "Code", "Order", "Customer", "Discount", "At")
	for _, p := range promotions {
		list, err := repo.ListRedemptions(ctx, p.ID)
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range list {
			redemptions.Append([]string{
				shortID(string(p.ID)),
				r.Code,
				r.OrderID,
				r.CustomerPhone,
				r.DiscountApplied.StringFixed(2),
				r.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
	}
	redemptions.Render()
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
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

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func discount(p domain.Promotion) string {
	switch {
	case p.Percentage != nil:
		return p.Percentage.String() + "%"
	case p.Amount != nil:
		return p.Amount.StringFixed(2)
	}
	return "-"
}

func usage(p domain.Promotion) string {
	if p.UsageCap == nil {
		return fmt.Sprintf("%d/∞", p.UsageCount)
	}
	return fmt.Sprintf("%d/%d", p.UsageCount, *p.UsageCap)
}

func window(p domain.Promotion) string {
	from, to := "", ""
	if p.StartsAt != nil {
		from = p.StartsAt.Format(time.DateOnly)
	}
	if p.EndsAt != nil {
		to = p.EndsAt.Format(time.DateOnly)
	}
	if from == "" && to == "" {
		return "-"
	}
	return from + " → " + to
}
