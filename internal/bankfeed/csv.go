package bankfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
)

const (
	statementNumFields   = 4
	statementColDate     = 0
	statementColAmount   = 1
	statementColDesc     = 2
	statementColMerchant = 3
)

// CSVParser parses the generic statement export: a header row followed by
// date, amount, description and merchant columns. Amounts are signed,
// deposits positive.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a statement CSV and returns feed records.
func (p *CSVParser) Parse(r io.Reader) ([]domain.BankTransactionParams, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = statementNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	batch := make([]domain.BankTransactionParams, 0, len(records)-1)

	for i, rec := range records[1:] {
		row, err := parseStatementRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		batch = append(batch, row)
	}

	stampExternalIDs(p.Format(), batch)

	return batch, nil
}

func parseStatementRow(rec []string) (domain.BankTransactionParams, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(rec[statementColDate]))
	if err != nil {
		return domain.BankTransactionParams{}, fmt.Errorf("parsing date %q: %w", rec[statementColDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[statementColAmount]))
	if err != nil {
		return domain.BankTransactionParams{}, fmt.Errorf("parsing amount %q: %w", rec[statementColAmount], err)
	}

	return domain.BankTransactionParams{
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(rec[statementColDesc]),
		Merchant:    strings.TrimSpace(rec[statementColMerchant]),
	}, nil
}
