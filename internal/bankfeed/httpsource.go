package bankfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
)

// HTTPSource pulls bank activity from an external feed provider.
//
// The provider declares which bank accounts it serves and hands out
// transactions with its own stable external ids:
//
//	GET {base}/accounts                   -> {"accounts": [7, 9]}
//	GET {base}/accounts/{id}/transactions -> {"transactions": [...]}
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource for the given provider base URL.
// A nil client falls back to a client with a 30 second timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Accounts returns the bank account ids the provider serves.
func (s *HTTPSource) Accounts(ctx context.Context) ([]int64, error) {
	var body struct {
		Accounts []int64 `json:"accounts"`
	}

	if err := s.get(ctx, s.baseURL+"/accounts", &body); err != nil {
		return nil, err
	}

	return body.Accounts, nil
}

type feedTransaction struct {
	ExternalID  uuid.UUID       `json:"external_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
}

// Fetch returns the provider's recent transactions for one bank account.
func (s *HTTPSource) Fetch(ctx context.Context, bankAccountID int64) ([]domain.BankTransactionParams, error) {
	var body struct {
		Transactions []feedTransaction `json:"transactions"`
	}

	url := fmt.Sprintf("%s/accounts/%d/transactions", s.baseURL, bankAccountID)

	if err := s.get(ctx, url, &body); err != nil {
		return nil, err
	}

	batch := make([]domain.BankTransactionParams, 0, len(body.Transactions))

	for _, t := range body.Transactions {
		date, err := time.Parse(dateLayout, t.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing feed date %q: %w", t.Date, err)
		}

		batch = append(batch, domain.BankTransactionParams{
			ExternalID:  t.ExternalID,
			Date:        date,
			Amount:      t.Amount,
			Description: t.Description,
			Merchant:    t.Merchant,
		})
	}

	return batch, nil
}

func (s *HTTPSource) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building feed request: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling feed provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("feed provider returned %s for %s", res.Status, url)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding feed response: %w", err)
	}

	return nil
}
