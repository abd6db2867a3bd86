package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
)

// CSVTransactionSource reads delimited transaction exports back into
// transaction sources, one per file.
type CSVTransactionSource struct {
	delimiter rune
	logger    *zap.Logger
}

// NewCSVTransactionSource creates a reader for files written with
// delimiter. Only single-character delimiters are supported.
func NewCSVTransactionSource(delimiter string, logger *zap.Logger) (*CSVTransactionSource, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) || r == '"' || r == '\n' || r == '\r' {
		return nil, fmt.Errorf("unsupported delimiter %q", delimiter)
	}
	return &CSVTransactionSource{delimiter: r, logger: logger}, nil
}

// Load reads every file in paths. The source name is the file's base name.
func (s *CSVTransactionSource) Load(ctx context.Context, paths []string) ([]domain.TransactionSource, error) {
	sources := make([]domain.TransactionSource, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		txs, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("loaded transaction file", zap.String("path", path), zap.Int("records", len(txs)))
		sources = append(sources, domain.TransactionSource{Name: filepath.Base(path), Transactions: txs})
	}
	return sources, nil
}

func (s *CSVTransactionSource) readFile(path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("transaction file %s has no id column", path)
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var transactions []domain.Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		// Bad amounts and timestamps are kept; the aggregator counts them
		// as excluded.
		transactions = append(transactions, domain.Transaction{
			ID:               field(record, "id"),
			TransactionType:  domain.TransactionType(strings.ToLower(field(record, "transactionType"))),
			Amount:           domain.ParseAmount(field(record, "amount")),
			WalletType:       domain.WalletType(field(record, "walletType")),
			Status:           parseStatus(field(record, "status")),
			CreatedAt:        field(record, "createdAt"),
			OriginalAmount:   domain.ParseAmount(field(record, "originalAmount")),
			OriginalCurrency: canonicalCurrency(field(record, "originalCurrency")),
			DoneBy:           field(record, "doneBy"),
			UserName:         field(record, "userName"),
			AccountID:        field(record, "accountId"),
		})
	}
	return transactions, nil
}

// parseStatus reads exported status names as well as the service's raw
// booleans, where false in a transaction list means failed.
func parseStatus(s string) domain.TransactionStatus {
	switch strings.ToLower(s) {
	case "completed", "true":
		return domain.StatusCompleted
	case "failed", "false":
		return domain.StatusFailed
	default:
		return domain.StatusPending
	}
}
