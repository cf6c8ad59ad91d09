package bankfeed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const statementCSV = `Date,Amount,Description,Merchant
2025-03-10,-250.00,ACH PAYMENT ACME SUPPLIES,ACME
2025-03-11,1200.00,CLIENT WIRE,
2025-03-12,-4.50,COFFEE,BLUE BOTTLE
2025-03-12,-4.50,COFFEE,BLUE BOTTLE
`

func TestCSVParser_Parse(t *testing.T) {
	p := &CSVParser{}

	txns, err := p.Parse(strings.NewReader(statementCSV))
	require.NoError(t, err)
	require.Len(t, txns, 4)

	assert.Equal(t, "ACH PAYMENT ACME SUPPLIES", txns[0].Description)
	assert.Equal(t, "ACME", txns[0].Merchant)
	assert.Equal(t, "-250.00", txns[0].Amount.StringFixed(2))
	assert.True(t, txns[0].Amount.IsNegative())
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 3, int(txns[0].Date.Month()))
	assert.Equal(t, 10, txns[0].Date.Day())

	assert.True(t, txns[1].Amount.IsPositive())
	assert.Equal(t, "", txns[1].Merchant)
}

func TestCSVParser_EmptyFile(t *testing.T) {
	p := &CSVParser{}

	txns, err := p.Parse(strings.NewReader("Date,Amount,Description,Merchant\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestCSVParser_BadDate(t *testing.T) {
	p := &CSVParser{}

	_, err := p.Parse(strings.NewReader("Date,Amount,Description,Merchant\n03/10/2025,-4.00,desc,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestCSVParser_BadAmount(t *testing.T) {
	p := &CSVParser{}

	_, err := p.Parse(strings.NewReader("Date,Amount,Description,Merchant\n2025-03-10,NOTANUMBER,desc,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestCSVParser_Format(t *testing.T) {
	assert.Equal(t, "csv", (&CSVParser{}).Format())
}

func TestCSVParser_DeterministicExternalIDs(t *testing.T) {
	p := &CSVParser{}

	first, err := p.Parse(strings.NewReader(statementCSV))
	require.NoError(t, err)

	second, err := p.Parse(strings.NewReader(statementCSV))
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ExternalID, second[i].ExternalID, "row %d", i)
	}

	// The two identical coffee rows are distinct records, not duplicates.
	assert.NotEqual(t, first[2].ExternalID, first[3].ExternalID)
}

func statementWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	cells := map[string]string{
		"A1": "Date", "B1": "Amount", "C1": "Description", "D1": "Merchant",
		"A2": "2025-03-10", "B2": "-250.00", "C2": "ACH PAYMENT ACME SUPPLIES", "D2": "ACME",
		"A3": "2025-03-11", "B3": "1200.00", "C3": "CLIENT WIRE",
	}
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	return buf.Bytes()
}

func TestXLSXParser_Parse(t *testing.T) {
	p := &XLSXParser{}

	txns, err := p.Parse(bytes.NewReader(statementWorkbook(t)))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "ACH PAYMENT ACME SUPPLIES", txns[0].Description)
	assert.Equal(t, "ACME", txns[0].Merchant)
	assert.Equal(t, "-250.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, 10, txns[0].Date.Day())

	assert.Equal(t, "CLIENT WIRE", txns[1].Description)
	assert.Equal(t, "", txns[1].Merchant)
	assert.True(t, txns[1].Amount.IsPositive())
}

func TestXLSXParser_BadDate(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Date"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "NOTADATE"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "-4.00"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "desc"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := (&XLSXParser{}).Parse(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestXLSXParser_Format(t *testing.T) {
	assert.Equal(t, "xlsx", (&XLSXParser{}).Format())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})

	p := r.Get("CSV")
	require.NotNil(t, p)
	assert.Equal(t, "csv", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	assert.Nil(t, NewRegistry().Get("qif"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	require.NotNil(t, r.Get("csv"))
	require.NotNil(t, r.Get("xlsx"))
}
