package bankfeed

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/finvera/ledger-core/internal/domain"
)

// XLSXParser parses the generic statement export saved as a workbook: the
// first sheet holds a header row followed by the same columns as the CSV
// layout, all as text.
type XLSXParser struct{}

// Format returns the parser name.
func (p *XLSXParser) Format() string { return "xlsx" }

// Parse reads a statement workbook and returns feed records.
func (p *XLSXParser) Parse(r io.Reader) ([]domain.BankTransactionParams, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening statement workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading statement sheet: %w", err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	batch := make([]domain.BankTransactionParams, 0, len(rows)-1)

	for i, rec := range rows[1:] {
		// Trailing empty cells are trimmed by the workbook reader.
		if len(rec) < statementNumFields-1 {
			return nil, fmt.Errorf("row %d: want at least %d cells, got %d", i+2, statementNumFields-1, len(rec))
		}

		merchant := ""
		if len(rec) > statementColMerchant {
			merchant = rec[statementColMerchant]
		}

		row, err := parseStatementRow([]string{rec[statementColDate], rec[statementColAmount], rec[statementColDesc], merchant})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		batch = append(batch, row)
	}

	stampExternalIDs(p.Format(), batch)

	return batch, nil
}
