// Package recondelivery manages delivery layer of bank reconciliation.
package recondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/pkg/errorspkg"
	"github.com/finvera/ledger-core/pkg/web"
)

const dateLayout = "2006-01-02"

// Service provides service layer interface needed by reconciliation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package recondelivery
type Service interface {
	Calculate(ctx context.Context, actor string, bankAccountID int64, statementDate time.Time, endingPerBank decimal.Decimal) (domain.Reconciliation, error)
	Approve(ctx context.Context, actor string, id int64) (domain.Reconciliation, error)
	Get(ctx context.Context, id int64) (domain.Reconciliation, error)
	Latest(ctx context.Context, bankAccountID int64) (domain.Reconciliation, error)
}

// Handler facilitates reconciliation delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns reconciliation handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

// writeError maps a service error onto the shared ledger error taxonomy.
func writeError(gctx *gin.Context, err error) {
	var duplicateApprover domain.DuplicateApproverError

	switch {
	case errors.Is(err, domain.ErrNotBankAccount):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	case errors.As(err, &duplicateApprover),
		errors.Is(err, domain.ErrReconciliationUnbalanced),
		errors.Is(err, domain.ErrReconciliationLocked):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrReconciliationNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataReconciliation struct {
	Reconciliation domain.Reconciliation `json:"reconciliation"`
}
type responseReconciliation struct {
	Data dataReconciliation `json:"data,omitempty"`
}

type calculateRequest struct {
	StatementDate        string          `json:"statement_date" binding:"required,datetime=2006-01-02"`
	EndingBalancePerBank decimal.Decimal `json:"ending_balance_per_bank"`
}

// Calculate handles http request to compute a draft reconciliation for a bank
// account statement. An unbalanced draft is still a successful calculation.
func (h *Handler) Calculate(gctx *gin.Context) {
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

	var req calculateRequest
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

	statementDate, err := time.Parse(dateLayout, req.StatementDate)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	rec, err := h.service.Calculate(ctx, middleware.ActorFromCtx(gctx), uri.ID, statementDate, req.EndingBalancePerBank)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReconciliation{Data: dataReconciliation{rec}})
}

// Approve handles http request to lock a balanced reconciliation under a
// second signature.
func (h *Handler) Approve(gctx *gin.Context) {
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

	rec, err := h.service.Approve(ctx, middleware.ActorFromCtx(gctx), uri.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReconciliation{Data: dataReconciliation{rec}})
}

// Get handles http request to fetch one reconciliation.
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

	rec, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReconciliation{Data: dataReconciliation{rec}})
}

// Latest handles http request to fetch a bank account's most recent
// reconciliation.
func (h *Handler) Latest(gctx *gin.Context) {
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

	rec, err := h.service.Latest(ctx, uri.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReconciliation{Data: dataReconciliation{rec}})
}
