package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestNormalBalanceFor(t *testing.T) {
	testCases := []struct {
		accountType AccountType
		wantSide    BalanceSide
		wantErr     error
	}{
		{AccountTypeAsset, SideDebit, nil},
		{AccountTypeExpense, SideDebit, nil},
		{AccountTypeLiability, SideCredit, nil},
		{AccountTypeEquity, SideCredit, nil},
		{AccountTypeRevenue, SideCredit, nil},
		{AccountType("goodwill"), "", ErrInvalidAccountType},
		{AccountType(""), "", ErrInvalidAccountType},
	}

	for _, tc := range testCases {
		side, err := NormalBalanceFor(tc.accountType)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, "NormalBalanceFor(%q)", tc.accountType)
			continue
		}

		require.NoError(t, err, "NormalBalanceFor(%q)", tc.accountType)
		assert.Equal(t, tc.wantSide, side, "NormalBalanceFor(%q)", tc.accountType)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]EntryStatus]bool{
		{StatusDraft, StatusPendingApproval}:    true,
		{StatusPendingApproval, StatusApproved}: true,
		{StatusPendingApproval, StatusDraft}:    true,
		{StatusApproved, StatusPosted}:          true,
		{StatusApproved, StatusDraft}:           true,
	}

	statuses := []EntryStatus{StatusDraft, StatusPendingApproval, StatusApproved, StatusPosted}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]EntryStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "CanTransition(%s, %s)", from, to)
		}
	}
}

func TestJournalEntryBalanced(t *testing.T) {
	tolerance := dec("0.01")

	testCases := []struct {
		name         string
		lines        []JournalLine
		wantBalanced bool
		wantDiff     string
	}{
		{
			name: "Equal sides",
			lines: []JournalLine{
				{Debit: dec("500")},
				{Credit: dec("500")},
			},
			wantBalanced: true,
			wantDiff:     "0",
		},
		{
			name: "Off by 100",
			lines: []JournalLine{
				{Debit: dec("500")},
				{Credit: dec("400")},
			},
			wantBalanced: false,
			wantDiff:     "100",
		},
		{
			name: "Within tolerance",
			lines: []JournalLine{
				{Debit: dec("500.00")},
				{Credit: dec("499.99")},
			},
			wantBalanced: true,
			wantDiff:     "0.01",
		},
		{
			name: "Just beyond tolerance",
			lines: []JournalLine{
				{Debit: dec("500.00")},
				{Credit: dec("499.98")},
			},
			wantBalanced: false,
			wantDiff:     "0.02",
		},
		{
			name: "Multi line",
			lines: []JournalLine{
				{Debit: dec("300")},
				{Debit: dec("200")},
				{Credit: dec("450")},
				{Credit: dec("50")},
			},
			wantBalanced: true,
			wantDiff:     "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := JournalEntry{Lines: tc.lines}

			assert.Equal(t, tc.wantBalanced, e.Balanced(tolerance))
			assert.True(t, e.BalanceDifference().Equal(dec(tc.wantDiff)),
				"BalanceDifference() = %s, want %s", e.BalanceDifference(), tc.wantDiff)
		})
	}
}

func TestJournalLineOneSided(t *testing.T) {
	testCases := []struct {
		name string
		line JournalLine
		want bool
	}{
		{"Debit only", JournalLine{Debit: dec("10.50")}, true},
		{"Credit only", JournalLine{Credit: dec("10.50")}, true},
		{"Both sides", JournalLine{Debit: dec("5"), Credit: dec("5")}, false},
		{"Neither side", JournalLine{}, false},
		{"Negative debit", JournalLine{Debit: dec("-5")}, false},
		{"Three decimals", JournalLine{Debit: dec("1.005")}, false},
		{"Two decimals", JournalLine{Credit: dec("1.05")}, true},
		{"Trailing zeros", JournalLine{Debit: dec("1.5000")}, true},
		{"Whole amount", JournalLine{Debit: dec("100")}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.line.OneSided())
		})
	}
}

func TestAccountBalanceDelta(t *testing.T) {
	cash := Account{Type: AccountTypeAsset, NormalBalance: SideDebit}
	revenue := Account{Type: AccountTypeRevenue, NormalBalance: SideCredit}

	// A 500 debit grows Cash and shrinks Revenue.
	assert.True(t, cash.BalanceDelta(dec("500"), decimal.Zero).Equal(dec("500")))
	assert.True(t, revenue.BalanceDelta(dec("500"), decimal.Zero).Equal(dec("-500")))

	// A 500 credit shrinks Cash and grows Revenue.
	assert.True(t, cash.BalanceDelta(decimal.Zero, dec("500")).Equal(dec("-500")))
	assert.True(t, revenue.BalanceDelta(decimal.Zero, dec("500")).Equal(dec("500")))
}

func TestOutOfBalanceErrorMessage(t *testing.T) {
	err := OutOfBalanceError{Difference: dec("100")}
	assert.Equal(t, "entry out of balance by 100.00", err.Error())

	err = OutOfBalanceError{Difference: dec("-0.02")}
	assert.Equal(t, "entry out of balance by 0.02", err.Error())
}
