package gateway

import (
	"sort"
	"strings"

	"wallet-dashboard/internal/domain"
)

// DefaultDelimiter separates fields when none is configured.
const DefaultDelimiter = ","

// TransactionColumns is the column set TransactionRecords fills, in
// export order.
var TransactionColumns = []string{
	"id",
	"transactionType",
	"amount",
	"walletType",
	"status",
	"createdAt",
	"originalAmount",
	"originalCurrency",
	"doneBy",
	"userName",
	"accountId",
}

// DelimitedExporter renders tabular records as delimited text.
type DelimitedExporter struct {
	Delimiter string
}

// NewDelimitedExporter creates an exporter joining fields with delimiter.
func NewDelimitedExporter(delimiter string) *DelimitedExporter {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &DelimitedExporter{Delimiter: delimiter}
}

// ToDelimitedText writes a header line followed by one line per row.
// Values are joined as-is: a value containing the delimiter or a newline
// corrupts its line. With no columns the header is the first row's keys in
// sorted order. No rows yields "".
func (e *DelimitedExporter) ToDelimitedText(rows []map[string]string, columns []string) string {
	if len(rows) == 0 {
		return ""
	}
	if len(columns) == 0 {
		columns = make([]string, 0, len(rows[0]))
		for k := range rows[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}
	delim := e.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, delim))
	fields := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			fields[i] = row[col]
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(fields, delim))
	}
	return b.String()
}

// TransactionRecords flattens txs into records keyed by TransactionColumns.
// Invalid amounts export as empty fields.
func TransactionRecords(txs []domain.Transaction) []map[string]string {
	records := make([]map[string]string, 0, len(txs))
	for _, tx := range txs {
		records = append(records, map[string]string{
			"id":               tx.ID,
			"transactionType":  string(tx.TransactionType),
			"amount":           tx.Amount.String(),
			"walletType":       string(tx.WalletType),
			"status":           string(tx.Status),
			"createdAt":        tx.CreatedAt,
			"originalAmount":   tx.OriginalAmount.String(),
			"originalCurrency": tx.OriginalCurrency,
			"doneBy":           tx.DoneBy,
			"userName":         tx.UserName,
			"accountId":        tx.AccountID,
		})
	}
	return records
}

// ExportTransactions renders txs with the standard column set.
func (e *DelimitedExporter) ExportTransactions(txs []domain.Transaction) string {
	return e.ToDelimitedText(TransactionRecords(txs), TransactionColumns)
}
