package recondelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/pkg/errorspkg"
	"github.com/finvera/ledger-core/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleRecon() domain.Reconciliation {
	return domain.Reconciliation{
		ID:                   3,
		BankAccountID:        7,
		StatementDate:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		BeginningBalance:     dec("1000.00"),
		EndingBalancePerBank: dec("1200.00"),
		EndingBalanceBooks:   dec("1300.00"),
		ClearedDeposits:      dec("500.00"),
		ClearedWithdrawals:   dec("200.00"),
		OutstandingChecks:    dec("100.00"),
		Difference:           dec("0.00"),
		Balanced:             true,
		Status:               domain.ReconciliationDraft,
		PreparedBy:           "carol",
		CreatedAt:            time.Now().Truncate(time.Second).UTC(),
	}
}

type calculateBody struct {
	StatementDate        string `json:"statement_date,omitempty"`
	EndingBalancePerBank string `json:"ending_balance_per_bank,omitempty"`
}

func TestCalculateAPI(t *testing.T) {
	draft := sampleRecon()

	unbalanced := sampleRecon()
	unbalanced.EndingBalancePerBank = dec("1205.00")
	unbalanced.Difference = dec("5.00")
	unbalanced.Balanced = false

	statementDate := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		actor          string
		requestBody    calculateBody
		buildStubs     func(reconService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Calculate(gomock.Any(), gomock.Eq("carol"), gomock.Eq(int64(7)), gomock.Eq(statementDate), gomock.Eq(dec("1200.00"))).
					Times(1).
					Return(draft, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(draft, got.Reconciliation, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "UnbalancedDraftIsStillOK",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1205.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(unbalanced, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if got.Reconciliation.Balanced {
					t.Error("res.Data Balanced=true, want false")
				}

				if !got.Reconciliation.Difference.Equal(dec("5.00")) {
					t.Errorf("res.Data Difference=%s, want 5.00", got.Reconciliation.Difference)
				}
			},
		},
		{
			name:        "NoActor",
			actor:       "",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrActorHeaderNotFound.Error(),
		},
		{
			name:        "MissingStatementDate",
			actor:       "carol",
			requestBody: calculateBody{EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "StatementDate is required",
		},
		{
			name:        "InvalidStatementDate",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "03/31/2025", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "StatementDate is invalid",
		},
		{
			name:        "NotBankAccount",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrNotBankAccount)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrNotBankAccount.Error(),
		},
		{
			name:        "LockedStatement",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationLocked)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrReconciliationLocked.Error(),
		},
		{
			name:        "AccountNotFound",
			actor:       "carol",
			requestBody: calculateBody{StatementDate: "2025-03-31", EndingBalancePerBank: "1200.00"},
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reconService := NewMockService(ctrl)
			reconHandler := NewHandler(reconService)

			server := gin.New()
			server.POST("/bank-accounts/:id/reconciliations", middleware.Actor(), reconHandler.Calculate)

			tc.buildStubs(reconService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/bank-accounts/7/reconciliations", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if tc.actor != "" {
				req.Header.Set(middleware.ActorHeaderKey, tc.actor)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if tc.checkData != nil {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestApproveReconciliationAPI(t *testing.T) {
	approvedAt := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	approved := sampleRecon()
	approved.Status = domain.ReconciliationApproved
	approved.ApprovedBy = "dave"
	approved.ApprovedAt = &approvedAt

	testCases := []struct {
		name           string
		actor          string
		buildStubs     func(reconService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:  "OK",
			actor: "dave",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Approve(gomock.Any(), gomock.Eq("dave"), gomock.Eq(int64(3))).
					Times(1).
					Return(approved, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if got.Reconciliation.Status != domain.ReconciliationApproved {
					t.Errorf("res.Data Status=%q, want %q", got.Reconciliation.Status, domain.ReconciliationApproved)
				}

				if got.Reconciliation.ApprovedBy != "dave" {
					t.Errorf(`res.Data ApprovedBy=%q, want "dave"`, got.Reconciliation.ApprovedBy)
				}
			},
		},
		{
			name:  "NoActor",
			actor: "",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrActorHeaderNotFound.Error(),
		},
		{
			name:  "Unbalanced",
			actor: "dave",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Approve(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationUnbalanced)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrReconciliationUnbalanced.Error(),
		},
		{
			name:  "PreparerCannotApprove",
			actor: "carol",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Approve(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.DuplicateApproverError{Approver: "carol"})
			},
			wantStatusCode: http.StatusConflict,
			wantError:      "approver carol cannot sign twice",
		},
		{
			name:  "AlreadyApproved",
			actor: "dave",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Approve(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationLocked)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrReconciliationLocked.Error(),
		},
		{
			name:  "NotFound",
			actor: "dave",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Approve(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrReconciliationNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reconService := NewMockService(ctrl)
			reconHandler := NewHandler(reconService)

			server := gin.New()
			server.POST("/reconciliations/:id/approve", middleware.Actor(), reconHandler.Approve)

			tc.buildStubs(reconService)

			req, err := http.NewRequest(http.MethodPost, "/reconciliations/3/approve", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if tc.actor != "" {
				req.Header.Set(middleware.ActorHeaderKey, tc.actor)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if tc.checkData != nil {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestGetReconciliationAPI(t *testing.T) {
	rec := sampleRecon()

	testCases := []struct {
		name           string
		reconID        string
		buildStubs     func(reconService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:    "OK",
			reconID: "3",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(3))).
					Times(1).
					Return(rec, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(rec, got.Reconciliation, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "NotFound",
			reconID: "99",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(99))).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrReconciliationNotFound.Error(),
		},
		{
			name:    "InvalidID",
			reconID: "0",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is required",
		},
		{
			name:    "InternalServerError",
			reconID: "3",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Reconciliation{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reconService := NewMockService(ctrl)
			reconHandler := NewHandler(reconService)

			server := gin.New()
			server.GET("/reconciliations/:id", reconHandler.Get)

			tc.buildStubs(reconService)

			req, err := http.NewRequest(http.MethodGet, "/reconciliations/"+tc.reconID, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if tc.checkData != nil {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestLatestReconciliationAPI(t *testing.T) {
	rec := sampleRecon()

	testCases := []struct {
		name           string
		buildStubs     func(reconService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name: "OK",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Latest(gomock.Any(), gomock.Eq(int64(7))).
					Times(1).
					Return(rec, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(rec, got.Reconciliation, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "NoneYet",
			buildStubs: func(reconService *MockService) {
				reconService.EXPECT().
					Latest(gomock.Any(), gomock.Eq(int64(7))).
					Times(1).
					Return(domain.Reconciliation{}, domain.ErrReconciliationNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrReconciliationNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reconService := NewMockService(ctrl)
			reconHandler := NewHandler(reconService)

			server := gin.New()
			server.GET("/bank-accounts/:id/reconciliations/latest", reconHandler.Latest)

			tc.buildStubs(reconService)

			req, err := http.NewRequest(http.MethodGet, "/bank-accounts/7/reconciliations/latest", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Reconciliation domain.Reconciliation `json:"reconciliation"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if tc.checkData != nil {
				tc.checkData(res.Data)
			}
		})
	}
}
