// Package accountdelivery manages delivery layer of the chart of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/errorspkg"
	"github.com/finvera/ledger-core/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByNumber(ctx context.Context, entityID int32, number string) (domain.Account, error)
	List(ctx context.Context, entityID int32) ([]domain.Account, error)
	ListBank(ctx context.Context, entityID int32) ([]domain.Account, error)
	Deactivate(ctx context.Context, id int64) (domain.Account, error)
	Reactivate(ctx context.Context, id int64) (domain.Account, error)
	TrialBalance(ctx context.Context, entityID int32) (domain.TrialBalance, error)
	SeedDefaultChart(ctx context.Context, entityID int32) ([]domain.Account, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	EntityID      int32  `json:"entity_id" binding:"required,min=1"`
	Number        string `json:"number" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,accounttype"`
	NormalBalance string `json:"normal_balance" binding:"omitempty,oneof=debit credit"`
	ParentID      *int64 `json:"parent_id" binding:"omitempty,min=1"`
	BankAccount   bool   `json:"bank_account"`
	Currency      string `json:"currency" binding:"required,currency"`
}

// Create handles http request to create an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
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

	arg := domain.CreateAccountParams{
		EntityID:      req.EntityID,
		Number:        req.Number,
		Name:          req.Name,
		Type:          domain.AccountType(req.Type),
		NormalBalance: domain.BalanceSide(req.NormalBalance),
		ParentID:      req.ParentID,
		BankAccount:   req.BankAccount,
		Currency:      req.Currency,
	}

	createdAccount, err := h.service.Create(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrDuplicateAccountNumber:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrParentAccountNotFound,
			domain.ErrInvalidAccountType,
			domain.ErrNormalBalanceMismatch:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{createdAccount}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get an account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	acc, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

type listRequest struct {
	EntityID int32  `form:"entity_id" binding:"required,min=1"`
	Number   string `form:"number" binding:"omitempty"`
}

type dataAccounts struct {
	Accounts []domain.Account `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list an entity's chart of accounts. A number
// query parameter narrows the result to the single account with that number.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
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

	if req.Number != "" {
		acc, err := h.service.GetByNumber(ctx, req.EntityID, req.Number)
		if err != nil {
			if err == domain.ErrAccountNotFound {
				gctx.JSON(http.StatusNotFound, web.Error(err))
				return
			}

			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

			return
		}

		gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{[]domain.Account{acc}}})

		return
	}

	accounts, err := h.service.List(ctx, req.EntityID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

// Deactivate handles http request to deactivate an account.
func (h *Handler) Deactivate(gctx *gin.Context) {
	h.setActive(gctx, false)
}

// Reactivate handles http request to reactivate an account.
func (h *Handler) Reactivate(gctx *gin.Context) {
	h.setActive(gctx, true)
}

func (h *Handler) setActive(gctx *gin.Context, active bool) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	var (
		acc domain.Account
		err error
	)

	if active {
		acc, err = h.service.Reactivate(ctx, req.ID)
	} else {
		acc, err = h.service.Deactivate(ctx, req.ID)
	}

	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{acc}})
}

type entityRequest struct {
	EntityID int32 `uri:"entity" binding:"required,min=1"`
}

type dataTrialBalance struct {
	TrialBalance domain.TrialBalance `json:"trial_balance"`
}
type responseTrialBalance struct {
	Data dataTrialBalance `json:"data,omitempty"`
}

// TrialBalance handles http request to list account balances by side.
func (h *Handler) TrialBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req entityRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	tb, err := h.service.TrialBalance(ctx, req.EntityID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseTrialBalance{Data: dataTrialBalance{tb}})
}

// SeedChart handles http request to seed the default chart of accounts.
func (h *Handler) SeedChart(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req entityRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

	accounts, err := h.service.SeedDefaultChart(ctx, req.EntityID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}
