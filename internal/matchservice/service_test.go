package matchservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/finvera/ledger-core/internal/domain"
)

func TestIngest(t *testing.T) {
	t.Parallel()

	batch := []domain.BankTransactionParams{
		{
			ExternalID:  uuid.MustParse("65b4ba2c-33c9-4d04-9bb6-4393593e26f2"),
			Date:        date(2025, 3, 10),
			Amount:      dec("-250.00"),
			Description: "ACH PAYMENT ACME SUPPLIES",
		},
		{
			ExternalID: uuid.MustParse("7d3cfa4d-5af1-4a21-b0c8-08307dbb0f73"),
			Date:       date(2025, 3, 11),
			Amount:     dec("1200.00"),
		},
	}

	inserted := []domain.BankTransaction{txn(1, date(2025, 3, 10), "-250.00")}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	bills := NewMockBillRepo(ctrl)

	repo.EXPECT().Ingest(gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(batch)).
		Times(1).
		Return(inserted, nil)

	service := New(repo, bills, DefaultRules())

	got, err := service.Ingest(context.Background(), 7, batch)
	require.NoError(t, err)

	if diff := cmp.Diff(inserted, got); diff != "" {
		t.Errorf("Ingest() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPass(t *testing.T) {
	t.Parallel()

	from, to := date(2025, 3, 1), date(2025, 3, 31)

	feed := []domain.BankTransaction{
		txn(1, date(2025, 3, 10), "-250.00"),
		txn(2, date(2025, 3, 20), "-42.00"),
	}
	candidates := []domain.LedgerReference{billRef(40, date(2025, 3, 9), "250.00")}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	bills := NewMockBillRepo(ctrl)

	repo.EXPECT().
		RunPass(gomock.Any(), gomock.Eq(int64(7)), gomock.Eq(from), gomock.Eq(to), gomock.Any()).
		Times(1).
		DoAndReturn(func(
			_ context.Context,
			_ int64,
			_, _ time.Time,
			pair func([]domain.BankTransaction, []domain.LedgerReference) []domain.MatchResult,
		) ([]domain.MatchResult, error) {
			return pair(feed, candidates), nil
		})

	service := New(repo, bills, DefaultRules())

	got, err := service.RunPass(context.Background(), 7, from, to)
	require.NoError(t, err)

	want := []domain.MatchResult{
		matched(1, domain.RefBill, 40),
		unmatched(2),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunPass() mismatch (-want +got):\n%s", diff)
	}
}

func TestManualMatch(t *testing.T) {
	confirmed := txn(5, date(2025, 3, 10), "-250.00")
	confirmed.Status = domain.MatchMatched
	confirmed.MatchedBy = "carol"

	kind := domain.RefBill
	refID := int64(40)
	confirmed.MatchedKind = &kind
	confirmed.MatchedRefID = &refID

	testCases := []struct {
		name          string
		actor         string
		kind          domain.ReferenceKind
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.BankTransaction, err error)
	}{
		{
			name:  "Missing actor",
			actor: "",
			kind:  domain.RefBill,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ManualMatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(_ domain.BankTransaction, err error) {
				require.EqualError(t, err, "acting identity is required")
			},
		},
		{
			name:  "Unknown reference kind",
			actor: "carol",
			kind:  domain.ReferenceKind("invoice"),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ManualMatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(_ domain.BankTransaction, err error) {
				require.EqualError(t, err, "ledger reference not found")
			},
		},
		{
			name:  "Reference already taken",
			actor: "carol",
			kind:  domain.RefBill,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					ManualMatch(gomock.Any(), gomock.Eq(int64(5)), gomock.Eq("carol"), gomock.Eq(domain.RefBill), gomock.Eq(int64(40))).
					Times(1).
					Return(domain.BankTransaction{}, domain.ErrReferenceConsumed)
			},
			checkResponse: func(_ domain.BankTransaction, err error) {
				require.EqualError(t, err, "ledger reference already consumed")
			},
		},
		{
			name:  "OK",
			actor: "carol",
			kind:  domain.RefBill,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					ManualMatch(gomock.Any(), gomock.Eq(int64(5)), gomock.Eq("carol"), gomock.Eq(domain.RefBill), gomock.Eq(int64(40))).
					Times(1).
					Return(confirmed, nil)
			},
			checkResponse: func(got domain.BankTransaction, err error) {
				require.NoError(t, err)

				if diff := cmp.Diff(confirmed, got); diff != "" {
					t.Errorf("ManualMatch() mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			bills := NewMockBillRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo, bills, DefaultRules())

			tc.checkResponse(service.ManualMatch(context.Background(), tc.actor, 5, tc.kind, 40))
		})
	}
}

func TestUnmatch(t *testing.T) {
	released := txn(5, date(2025, 3, 10), "-250.00")

	testCases := []struct {
		name          string
		actor         string
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.BankTransaction, err error)
	}{
		{
			name:  "Missing actor",
			actor: "",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Unmatch(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(_ domain.BankTransaction, err error) {
				require.EqualError(t, err, "acting identity is required")
			},
		},
		{
			name:  "OK",
			actor: "carol",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Unmatch(gomock.Any(), gomock.Eq(int64(5))).
					Times(1).
					Return(released, nil)
			},
			checkResponse: func(got domain.BankTransaction, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.MatchUnmatched, got.Status)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			bills := NewMockBillRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo, bills, DefaultRules())

			tc.checkResponse(service.Unmatch(context.Background(), tc.actor, 5))
		})
	}
}

func TestCreateBill(t *testing.T) {
	arg := domain.CreateBillParams{
		EntityID:      1,
		Vendor:        "Acme Supplies",
		Amount:        dec("250.00"),
		IssueDate:     date(2025, 3, 9),
		DueDate:       date(2025, 4, 8),
		BankAccountID: 7,
	}

	created := domain.Bill{
		ID:            40,
		EntityID:      1,
		Vendor:        "Acme Supplies",
		Amount:        dec("250.00"),
		IssueDate:     date(2025, 3, 9),
		DueDate:       date(2025, 4, 8),
		Status:        domain.BillOpen,
		BankAccountID: 7,
	}

	testCases := []struct {
		name          string
		amount        string
		buildStubs    func(bills *MockBillRepo)
		checkResponse func(got domain.Bill, err error)
	}{
		{
			name:   "Zero amount",
			amount: "0",
			buildStubs: func(bills *MockBillRepo) {
				bills.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(_ domain.Bill, err error) {
				require.EqualError(t, err, "bill amount must be positive")
			},
		},
		{
			name:   "Negative amount",
			amount: "-250.00",
			buildStubs: func(bills *MockBillRepo) {
				bills.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(_ domain.Bill, err error) {
				require.EqualError(t, err, "bill amount must be positive")
			},
		},
		{
			name:   "OK",
			amount: "250.00",
			buildStubs: func(bills *MockBillRepo) {
				bills.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(created, nil)
			},
			checkResponse: func(got domain.Bill, err error) {
				require.NoError(t, err)

				if diff := cmp.Diff(created, got); diff != "" {
					t.Errorf("CreateBill() mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			bills := NewMockBillRepo(ctrl)
			tc.buildStubs(bills)

			service := New(repo, bills, DefaultRules())

			in := arg
			in.Amount = dec(tc.amount)

			tc.checkResponse(service.CreateBill(context.Background(), in))
		})
	}
}
