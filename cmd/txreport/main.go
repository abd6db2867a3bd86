package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"wallet-dashboard/internal/clock"
	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/gateway"
	"wallet-dashboard/internal/session"
	"wallet-dashboard/internal/usecase"
)

type report struct {
	Sources           int                      `json:"sources"`
	DuplicatesDropped int                      `json:"duplicatesDropped"`
	TruncatedSources  []string                 `json:"truncatedSources,omitempty"`
	Filter            domain.TransactionFilter `json:"filter"`
	Sort              domain.SortState         `json:"sort"`
	Statistics        domain.Statistics        `json:"statistics"`
	Rows              []domain.Transaction     `json:"rows,omitempty"`
}

func main() {
	filesStr := flag.String("files", "", "Comma-separated list of transaction CSV files")
	apiURL := flag.String("api", "", "Base URL of the wallet service (used when -files is empty)")
	token := flag.String("token", os.Getenv("WALLET_TOKEN"), "Bearer token for -api")
	account := flag.String("account", "", "Account ID to load from -api")
	doneBy := flag.String("done-by", "", "Also load transactions processed by this user ID (-api only)")
	search := flag.String("search", "", "Case-insensitive search over transaction type and wallet type")
	txType := flag.String("type", "all", "Transaction type filter")
	status := flag.String("status", "all", "Status filter")
	dateRange := flag.String("range", "all", "Date range: all, today, week or month")
	sortKey := flag.String("sort", "createdAt", "Sort key")
	sortDir := flag.String("dir", "desc", "Sort direction: asc or desc")
	showRows := flag.Bool("rows", false, "Include the filtered rows in the report")
	exportPath := flag.String("export", "", "Write the filtered rows as delimited text to this path")
	columns := flag.String("columns", "", "Comma-separated export columns (default: all)")
	delimiter := flag.String("delimiter", gateway.DefaultDelimiter, "Field delimiter for -files and -export")
	verbose := flag.Bool("v", false, "Log progress to stderr")
	flag.Parse()

	if *filesStr == "" && *apiURL == "" {
		fmt.Println("Error: one of -files or -api is required.")
		flag.Usage()
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger = l
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var sources []domain.TransactionSource
	var err error
	if *filesStr != "" {
		sources, err = loadFiles(ctx, splitList(*filesStr), *delimiter, logger)
	} else {
		sources, err = loadAPI(ctx, *apiURL, *token, *account, *doneBy, logger)
	}
	if err != nil {
		log.Fatalf("Loading transactions failed: %v", err)
	}

	direction := domain.SortDesc
	if strings.EqualFold(*sortDir, string(domain.SortAsc)) {
		direction = domain.SortAsc
	}
	aggregator := usecase.NewTransactionAggregator(clock.Real(), logger)
	view := aggregator.BuildView(sources,
		domain.TransactionFilter{Search: *search, Type: *txType, Status: *status, DateRange: domain.DateRange(*dateRange)},
		domain.SortState{Key: *sortKey, Direction: direction},
		usecase.ViewOptions{StatsScope: domain.StatsOverFiltered},
	)

	out := report{
		Sources:           view.Sources,
		DuplicatesDropped: view.DuplicatesDropped,
		TruncatedSources:  view.TruncatedSources,
		Filter:            view.Filter,
		Sort:              view.Sort,
		Statistics:        view.Statistics,
	}
	if *showRows {
		out.Rows = view.Rows
	}
	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON report: %v", err)
	}
	fmt.Println(string(output))

	if *exportPath != "" {
		exporter := gateway.NewDelimitedExporter(*delimiter)
		cols := splitList(*columns)
		if len(cols) == 0 {
			cols = gateway.TransactionColumns
		}
		text := exporter.ToDelimitedText(gateway.TransactionRecords(view.Rows), cols)
		if text == "" {
			log.Fatalf("No transactions to export.")
		}
		if err := os.WriteFile(*exportPath, []byte(text), 0o644); err != nil {
			log.Fatalf("Failed to write export: %v", err)
		}
	}
}

func loadFiles(ctx context.Context, paths []string, delimiter string, logger *zap.Logger) ([]domain.TransactionSource, error) {
	source, err := gateway.NewCSVTransactionSource(delimiter, logger)
	if err != nil {
		return nil, err
	}
	return source.Load(ctx, paths)
}

// loadAPI signs a throwaway session in with token so the loader can page
// through the remote streams the same way the dashboard does.
func loadAPI(ctx context.Context, baseURL, token, account, doneBy string, logger *zap.Logger) ([]domain.TransactionSource, error) {
	sessions := session.NewManager(session.NewMemoryStore(), clock.Real(), logger)
	if _, err := sessions.Login(ctx, token, domain.User{ID: doneBy, Role: domain.RoleCitizen, AccountID: account}); err != nil {
		return nil, err
	}
	client := gateway.NewClient(baseURL, 0, sessions, logger)
	loader := usecase.NewTransactionLoader(client, sessions, logger, 20, 50)

	queries := []usecase.NamedQuery{{Name: "my-wallet", Query: domain.TransactionQuery{AccountID: account}}}
	if doneBy != "" {
		queries = append(queries, usecase.NamedQuery{Name: "processed-for-others", Query: domain.TransactionQuery{DoneBy: doneBy}})
	}
	return loader.Load(ctx, queries...)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
