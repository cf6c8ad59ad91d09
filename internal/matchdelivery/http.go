// Package matchdelivery manages delivery layer of bank feed ingestion and
// transaction matching.
package matchdelivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/bankfeed"
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/pkg/errorspkg"
	"github.com/finvera/ledger-core/pkg/web"
)

const dateLayout = "2006-01-02"

// Service provides service layer interface needed by match delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package matchdelivery
type Service interface {
	Ingest(ctx context.Context, bankAccountID int64, batch []domain.BankTransactionParams) ([]domain.BankTransaction, error)
	RunPass(ctx context.Context, bankAccountID int64, from, to time.Time) ([]domain.MatchResult, error)
	ManualMatch(ctx context.Context, actor string, id int64, kind domain.ReferenceKind, refID int64) (domain.BankTransaction, error)
	Unmatch(ctx context.Context, actor string, id int64) (domain.BankTransaction, error)
	Get(ctx context.Context, id int64) (domain.BankTransaction, error)
	ListTransactions(ctx context.Context, arg domain.ListBankTransactionsParams) ([]domain.BankTransaction, error)
	CreateBill(ctx context.Context, arg domain.CreateBillParams) (domain.Bill, error)
	ListBills(ctx context.Context, entityID int32, status domain.BillStatus) ([]domain.Bill, error)
}

// Handler facilitates match delivery layer logic.
type Handler struct {
	service Service
	parsers *bankfeed.Registry
}

// NewHandler returns match handler.
func NewHandler(ms Service, parsers *bankfeed.Registry) Handler {
	return Handler{service: ms, parsers: parsers}
}

// writeError maps a service error onto the shared ledger error taxonomy.
func writeError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotBankAccount),
		errors.Is(err, domain.ErrInvalidBillAmount):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	case errors.Is(err, domain.ErrReferenceConsumed):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrBankTransactionNotFound),
		errors.Is(err, domain.ErrReferenceNotFound),
		errors.Is(err, domain.ErrBillNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataTransaction struct {
	Transaction domain.BankTransaction `json:"transaction"`
}
type responseTransaction struct {
	Data dataTransaction `json:"data,omitempty"`
}

type dataTransactions struct {
	Transactions []domain.BankTransaction `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

type feedRecordRequest struct {
	ExternalID  uuid.UUID       `json:"external_id" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
}

type ingestRequest struct {
	Transactions []feedRecordRequest `json:"transactions" binding:"required,min=1,dive"`
}

// Ingest handles http request to append a bank feed batch to a bank account.
func (h *Handler) Ingest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req ingestRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	batch := make([]domain.BankTransactionParams, 0, len(req.Transactions))

	for _, r := range req.Transactions {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		batch = append(batch, domain.BankTransactionParams{
			ExternalID:  r.ExternalID,
			Date:        date,
			Amount:      r.Amount,
			Description: r.Description,
			Merchant:    r.Merchant,
		})
	}

	inserted, err := h.service.Ingest(ctx, uri.ID, batch)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{inserted}})
}

type uploadStatementRequest struct {
	Format string `form:"format" binding:"required,oneof=csv xlsx"`
}

// UploadStatement handles http request to ingest a statement file exported
// from a bank. The file rows become feed records with derived external ids,
// so uploading the same file twice does not duplicate the feed.
func (h *Handler) UploadStatement(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req uploadStatementRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	fileHeader, err := gctx.FormFile("file")
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}
	defer func() {
		_ = file.Close()
	}()

	batch, err := h.parsers.Get(req.Format).Parse(file)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	inserted, err := h.service.Ingest(ctx, uri.ID, batch)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{inserted}})
}

type dataResults struct {
	Results []domain.MatchResult `json:"results"`
}
type responseResults struct {
	Data dataResults `json:"data,omitempty"`
}

type passRequest struct {
	From string `json:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" binding:"omitempty,datetime=2006-01-02"`
}

// RunPass handles http request to run an automatic match pass over a bank
// account's feed records.
func (h *Handler) RunPass(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req passRequest
	if err := gctx.ShouldBindJSON(&req); err != nil && err != io.EOF {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	results, err := h.service.RunPass(ctx, uri.ID, from, to)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseResults{Data: dataResults{results}})
}

// parseRange turns optional date strings into time bounds, zero meaning
// unbounded.
func parseRange(fromStr, toStr string) (from, to time.Time, err error) {
	if fromStr != "" {
		from, err = time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if toStr != "" {
		to, err = time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return from, to, nil
}

type listTransactionsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=unmatched suggested matched"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit  int32  `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32  `form:"offset" binding:"omitempty,min=0"`
}

// ListTransactions handles http request to list a bank account's feed records.
func (h *Handler) ListTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req listTransactionsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	arg := domain.ListBankTransactionsParams{
		BankAccountID: uri.ID,
		Status:        domain.MatchStatus(req.Status),
		From:          from,
		To:            to,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}

	txns, err := h.service.ListTransactions(ctx, arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{txns}})
}

type manualMatchRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=bill journal_line"`
	RefID int64  `json:"ref_id" binding:"required,min=1"`
}

// Match handles http request to manually link a bank transaction to a ledger
// reference.
func (h *Handler) Match(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	var req manualMatchRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	t, err := h.service.ManualMatch(ctx, middleware.ActorFromCtx(gctx), uri.ID, domain.ReferenceKind(req.Kind), req.RefID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{t}})
}

// Unmatch handles http request to release a bank transaction's match.
func (h *Handler) Unmatch(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	t, err := h.service.Unmatch(ctx, middleware.ActorFromCtx(gctx), uri.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{t}})
}

// Get handles http request to fetch one bank transaction.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	t, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransaction{Data: dataTransaction{t}})
}

type dataBill struct {
	Bill domain.Bill `json:"bill"`
}
type responseBill struct {
	Data dataBill `json:"data,omitempty"`
}

type dataBills struct {
	Bills []domain.Bill `json:"bills"`
}
type responseBills struct {
	Data dataBills `json:"data,omitempty"`
}

type createBillRequest struct {
	EntityID      int32           `json:"entity_id" binding:"required,min=1"`
	Vendor        string          `json:"vendor" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     string          `json:"issue_date" binding:"required,datetime=2006-01-02"`
	DueDate       string          `json:"due_date" binding:"required,datetime=2006-01-02"`
	BankAccountID int64           `json:"bank_account_id" binding:"required,min=1"`
}

// CreateBill handles http request to register an open bill.
func (h *Handler) CreateBill(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createBillRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.CreateBillParams{
		EntityID:      req.EntityID,
		Vendor:        req.Vendor,
		Amount:        req.Amount,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		BankAccountID: req.BankAccountID,
	}

	bill, err := h.service.CreateBill(ctx, arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBill{Data: dataBill{bill}})
}

type listBillsRequest struct {
	EntityID int32  `form:"entity_id" binding:"required,min=1"`
	Status   string `form:"status" binding:"omitempty,oneof=open paid"`
}

// ListBills handles http request to list an entity's bills.
func (h *Handler) ListBills(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listBillsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	bills, err := h.service.ListBills(ctx, req.EntityID, domain.BillStatus(req.Status))
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBills{Data: dataBills{bills}})
}
