package accountdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/currencypkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"
	"github.com/finvera/ledger-core/pkg/web"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", ValidCurrency); err != nil {
			panic(err)
		}

		if err := v.RegisterValidation("accounttype", ValidAccountType); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func checkingAccount() domain.Account {
	return domain.Account{
		ID:            1,
		EntityID:      1,
		Number:        "1010",
		Name:          "Business Checking",
		Type:          domain.AccountTypeAsset,
		NormalBalance: domain.SideDebit,
		BankAccount:   true,
		Currency:      currencypkg.USD,
		Active:        true,
		Balance:       decimal.Zero,
		CreatedAt:     time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreateAPI(t *testing.T) {
	account := checkingAccount()

	type requestBody struct {
		EntityID    int32  `json:"entity_id"`
		Number      string `json:"number"`
		Name        string `json:"name"`
		Type        string `json:"type"`
		BankAccount bool   `json:"bank_account"`
		Currency    string `json:"currency"`
	}

	okBody := requestBody{
		EntityID:    1,
		Number:      "1010",
		Name:        "Business Checking",
		Type:        "asset",
		BankAccount: true,
		Currency:    currencypkg.USD,
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: okBody,
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateAccountParams{
						EntityID:    1,
						Number:      "1010",
						Name:        "Business Checking",
						Type:        domain.AccountTypeAsset,
						BankAccount: true,
						Currency:    currencypkg.USD,
					})).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Account domain.Account `json:"account"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(account, got.Account, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "InvalidCurrency",
			requestBody: requestBody{
				EntityID: 1,
				Number:   "1010",
				Name:     "Business Checking",
				Type:     "asset",
				Currency: "RUB",
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Currency is not a supported currency",
		},
		{
			name: "InvalidType",
			requestBody: requestBody{
				EntityID: 1,
				Number:   "1010",
				Name:     "Business Checking",
				Type:     "fund",
				Currency: currencypkg.USD,
			},
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Type is not a valid account type",
		},
		{
			name:        "ErrDuplicateAccountNumber",
			requestBody: okBody,
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrDuplicateAccountNumber)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrDuplicateAccountNumber.Error(),
		},
		{
			name:        "ErrParentAccountNotFound",
			requestBody: okBody,
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrParentAccountNotFound)
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      domain.ErrParentAccountNotFound.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: okBody,
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
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
			accountService := NewMockService(ctrl)
			accountHandler := NewHandler(accountService)

			server := gin.New()
			server.POST("/accounts", accountHandler.Create)

			tc.buildStubs(accountService)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
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
					Account domain.Account `json:"account"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestGetAPI(t *testing.T) {
	account := checkingAccount()

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			url:  "/accounts/1",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			url:  "/accounts/777",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					Get(gomock.Any(), gomock.Eq(int64(777))).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name: "InvalidID",
			url:  "/accounts/0",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			accountService := NewMockService(ctrl)
			accountHandler := NewHandler(accountService)

			server := gin.New()
			server.GET("/accounts/:id", accountHandler.Get)

			tc.buildStubs(accountService)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			}
		})
	}
}

func TestListAPI(t *testing.T) {
	account := checkingAccount()

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(accountService *MockService)
		wantStatusCode int
		wantError      string
		wantAccounts   int
	}{
		{
			name: "OK",
			url:  "/accounts?entity_id=1",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					List(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return([]domain.Account{account}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantAccounts:   1,
		},
		{
			name: "ResolveNumber",
			url:  "/accounts?entity_id=1&number=1010",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					GetByNumber(gomock.Any(), gomock.Eq(int32(1)), gomock.Eq("1010")).
					Times(1).
					Return(account, nil)

				accountService.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusOK,
			wantAccounts:   1,
		},
		{
			name: "ResolveNumberNotFound",
			url:  "/accounts?entity_id=1&number=9999",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().
					GetByNumber(gomock.Any(), gomock.Eq(int32(1)), gomock.Eq("9999")).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name: "MissingEntityID",
			url:  "/accounts",
			buildStubs: func(accountService *MockService) {
				accountService.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "EntityID is required",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			accountService := NewMockService(ctrl)
			accountHandler := NewHandler(accountService)

			server := gin.New()
			server.GET("/accounts", accountHandler.List)

			tc.buildStubs(accountService)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
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
					Accounts []domain.Account `json:"accounts"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got, ok := res.Data.(*struct {
				Accounts []domain.Account `json:"accounts"`
			})
			if !ok {
				t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
			}

			if len(got.Accounts) != tc.wantAccounts {
				t.Errorf("len(accounts)=%d, want %d", len(got.Accounts), tc.wantAccounts)
			}
		})
	}
}

func TestTrialBalanceAPI(t *testing.T) {
	tb := domain.TrialBalance{
		EntityID: 1,
		Rows: []domain.TrialBalanceRow{
			{AccountID: 1, Number: "1010", Name: "Business Checking", Type: domain.AccountTypeAsset,
				DebitBalance: decimal.NewFromInt(100), CreditBalance: decimal.Zero},
		},
		TotalDebits:  decimal.NewFromInt(100),
		TotalCredits: decimal.NewFromInt(100),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accountService := NewMockService(ctrl)
	accountHandler := NewHandler(accountService)

	server := gin.New()
	server.GET("/entities/:entity/trial-balance", accountHandler.TrialBalance)

	accountService.EXPECT().
		TrialBalance(gomock.Any(), gomock.Eq(int32(1))).
		Times(1).
		Return(tb, nil)

	req, err := http.NewRequest(http.MethodGet, "/entities/1/trial-balance", nil)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusOK {
		t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
	}

	res := web.Response{
		Data: &struct {
			TrialBalance domain.TrialBalance `json:"trial_balance"`
		}{},
	}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Errorf("Decoding response body error: %v", err)
	}

	got, ok := res.Data.(*struct {
		TrialBalance domain.TrialBalance `json:"trial_balance"`
	})
	if !ok {
		t.Fatalf(`res.Data=%v, failed type conversion`, res.Data)
	}

	if !got.TrialBalance.TotalDebits.Equal(got.TrialBalance.TotalCredits) {
		t.Errorf("trial balance columns differ: debits=%s credits=%s",
			got.TrialBalance.TotalDebits, got.TrialBalance.TotalCredits)
	}
}
