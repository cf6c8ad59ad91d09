package accountservice

import (
	"os"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/currencypkg"

	"gopkg.in/yaml.v3"
)

// ChartEntry is one account of a seedable chart of accounts.
type ChartEntry struct {
	Number      string             `yaml:"number"`
	Name        string             `yaml:"name"`
	Type        domain.AccountType `yaml:"type"`
	BankAccount bool               `yaml:"bank_account"`
	Currency    string             `yaml:"currency"`
}

type chartFile struct {
	Accounts []ChartEntry `yaml:"accounts"`
}

// DefaultChart returns the built-in small-business chart of accounts.
func DefaultChart() []ChartEntry {
	usd := currencypkg.USD

	return []ChartEntry{
		{Number: "1010", Name: "Business Checking", Type: domain.AccountTypeAsset, BankAccount: true, Currency: usd},
		{Number: "1020", Name: "Business Savings", Type: domain.AccountTypeAsset, BankAccount: true, Currency: usd},
		{Number: "1200", Name: "Accounts Receivable", Type: domain.AccountTypeAsset, Currency: usd},
		{Number: "2010", Name: "Credit Card", Type: domain.AccountTypeLiability, Currency: usd},
		{Number: "2100", Name: "Accounts Payable", Type: domain.AccountTypeLiability, Currency: usd},
		{Number: "3010", Name: "Owner's Equity", Type: domain.AccountTypeEquity, Currency: usd},
		{Number: "3900", Name: "Retained Earnings", Type: domain.AccountTypeEquity, Currency: usd},
		{Number: "4010", Name: "Service Revenue", Type: domain.AccountTypeRevenue, Currency: usd},
		{Number: "4020", Name: "Product Revenue", Type: domain.AccountTypeRevenue, Currency: usd},
		{Number: "5010", Name: "Advertising & Marketing", Type: domain.AccountTypeExpense, Currency: usd},
		{Number: "5020", Name: "Software & SaaS", Type: domain.AccountTypeExpense, Currency: usd},
		{Number: "5030", Name: "Office Supplies", Type: domain.AccountTypeExpense, Currency: usd},
		{Number: "5040", Name: "Professional Services", Type: domain.AccountTypeExpense, Currency: usd},
		{Number: "5050", Name: "Bank Fees", Type: domain.AccountTypeExpense, Currency: usd},
	}
}

// LoadChart reads a chart of accounts from a yaml file. Entries without a
// currency default to USD.
func LoadChart(path string) ([]ChartEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f chartFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	for i := range f.Accounts {
		if f.Accounts[i].Currency == "" {
			f.Accounts[i].Currency = currencypkg.USD
		}
	}

	return f.Accounts, nil
}
