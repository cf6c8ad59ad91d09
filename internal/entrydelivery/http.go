// Package entrydelivery manages delivery layer of journal entries and their
// approval workflow.
package entrydelivery

import (
	"context"
	"errors"
	"io"
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

// Service provides service layer interface needed by entry delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package entrydelivery
type Service interface {
	Create(ctx context.Context, actor string, arg domain.CreateEntryParams) (domain.JournalEntry, error)
	Update(ctx context.Context, actor string, id int64, arg domain.UpdateEntryParams) (domain.JournalEntry, error)
	Submit(ctx context.Context, actor string, id int64) (domain.JournalEntry, error)
	Approve(ctx context.Context, actor string, id int64) (domain.JournalEntry, error)
	Reject(ctx context.Context, actor string, id int64, notes string) (domain.JournalEntry, error)
	Post(ctx context.Context, actor string, id int64) (domain.PostingResult, error)
	CreateReversing(ctx context.Context, actor string, arg domain.ReverseParams) (domain.JournalEntry, error)
	Get(ctx context.Context, id int64) (domain.EntryDetail, error)
	List(ctx context.Context, arg domain.ListEntriesParams) ([]domain.JournalEntry, error)
	ClosePeriod(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error)
	OpenPeriod(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error)
}

// Handler facilitates entry delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns entry handler.
func NewHandler(es Service) Handler {
	return Handler{service: es}
}

// writeError maps a service error onto the shared ledger error taxonomy:
// validation failures are 422, workflow and ownership conflicts are 409 and
// 403, missing records are 404, anything unrecognized is a 500.
func writeError(gctx *gin.Context, err error) {
	var (
		outOfBalance      domain.OutOfBalanceError
		unknownAccount    domain.UnknownAccountError
		periodClosed      domain.PeriodClosedError
		invalidTransition domain.InvalidTransitionError
		duplicateApprover domain.DuplicateApproverError
	)

	switch {
	case errors.As(err, &outOfBalance),
		errors.As(err, &unknownAccount),
		errors.As(err, &periodClosed),
		errors.Is(err, domain.ErrInvalidEntryType),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrNoLines),
		errors.Is(err, domain.ErrInvalidLineShape),
		errors.Is(err, domain.ErrAccountInactive):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	case errors.As(err, &invalidTransition),
		errors.As(err, &duplicateApprover),
		errors.Is(err, domain.ErrEntryLocked),
		errors.Is(err, domain.ErrEntryNotDraft),
		errors.Is(err, domain.ErrMissingRejectionReason),
		errors.Is(err, domain.ErrReverseUnposted):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrNotCreator):
		gctx.JSON(http.StatusForbidden, web.Error(err))
	case errors.Is(err, domain.ErrEntryNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type data struct {
	Entry domain.JournalEntry `json:"entry"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type lineRequest struct {
	AccountID   int64           `json:"account_id" binding:"required,min=1"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

type createRequest struct {
	EntityID     int32         `json:"entity_id" binding:"required,min=1"`
	Date         string        `json:"date" binding:"required,datetime=2006-01-02"`
	FiscalYear   int           `json:"fiscal_year" binding:"required,min=1900,max=9999"`
	FiscalPeriod int           `json:"fiscal_period" binding:"required,min=1,max=12"`
	Type         string        `json:"type" binding:"omitempty,entrytype"`
	Memo         string        `json:"memo"`
	Reference    string        `json:"reference"`
	Lines        []lineRequest `json:"lines" binding:"required,min=1,dive"`
}

func lineParams(lines []lineRequest) []domain.LineParams {
	out := make([]domain.LineParams, 0, len(lines))

	for _, l := range lines {
		out = append(out, domain.LineParams{
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		})
	}

	return out
}

// Create handles http request to create a draft journal entry.
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

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.CreateEntryParams{
		EntityID:     req.EntityID,
		Date:         date,
		FiscalYear:   req.FiscalYear,
		FiscalPeriod: req.FiscalPeriod,
		Type:         domain.EntryType(req.Type),
		Memo:         req.Memo,
		Reference:    req.Reference,
		Lines:        lineParams(req.Lines),
	}

	entry, err := h.service.Create(ctx, middleware.ActorFromCtx(gctx), arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type updateRequest struct {
	Date         string        `json:"date" binding:"required,datetime=2006-01-02"`
	FiscalYear   int           `json:"fiscal_year" binding:"required,min=1900,max=9999"`
	FiscalPeriod int           `json:"fiscal_period" binding:"required,min=1,max=12"`
	Memo         string        `json:"memo"`
	Reference    string        `json:"reference"`
	Lines        []lineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Update handles http request to rewrite a draft entry in place.
func (h *Handler) Update(gctx *gin.Context) {
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

	var req updateRequest
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

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.UpdateEntryParams{
		Date:         date,
		FiscalYear:   req.FiscalYear,
		FiscalPeriod: req.FiscalPeriod,
		Memo:         req.Memo,
		Reference:    req.Reference,
		Lines:        lineParams(req.Lines),
	}

	entry, err := h.service.Update(ctx, middleware.ActorFromCtx(gctx), uri.ID, arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

// Submit handles http request to submit a draft for approval.
func (h *Handler) Submit(gctx *gin.Context) {
	h.transition(gctx, func(ctx context.Context, actor string, id int64) (domain.JournalEntry, error) {
		return h.service.Submit(ctx, actor, id)
	})
}

// Approve handles http request to record an approval signature.
func (h *Handler) Approve(gctx *gin.Context) {
	h.transition(gctx, func(ctx context.Context, actor string, id int64) (domain.JournalEntry, error) {
		return h.service.Approve(ctx, actor, id)
	})
}

func (h *Handler) transition(gctx *gin.Context, op func(context.Context, string, int64) (domain.JournalEntry, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
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

	entry, err := op(ctx, middleware.ActorFromCtx(gctx), req.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type rejectRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// Reject handles http request to reject a pending or approved entry back to draft.
func (h *Handler) Reject(gctx *gin.Context) {
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

	var req rejectRequest
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

	entry, err := h.service.Reject(ctx, middleware.ActorFromCtx(gctx), uri.ID, req.Notes)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type dataPosting struct {
	Posting domain.PostingResult `json:"posting"`
}
type responsePosting struct {
	Data dataPosting `json:"data,omitempty"`
}

// Post handles http request to post an approved entry to the ledger.
//
// Posting is idempotent: re-posting an already posted entry succeeds without
// touching balances and reports AlreadyPosted.
func (h *Handler) Post(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
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

	result, err := h.service.Post(ctx, middleware.ActorFromCtx(gctx), req.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responsePosting{Data: dataPosting{result}})
}

type reverseRequest struct {
	Date         string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	FiscalYear   int    `json:"fiscal_year" binding:"omitempty,min=1900,max=9999"`
	FiscalPeriod int    `json:"fiscal_period" binding:"omitempty,min=1,max=12"`
	Memo         string `json:"memo"`
}

// Reverse handles http request to create a draft reversing entry for a posted one.
func (h *Handler) Reverse(gctx *gin.Context) {
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

	var req reverseRequest
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

	arg := domain.ReverseParams{
		EntryID:      uri.ID,
		FiscalYear:   req.FiscalYear,
		FiscalPeriod: req.FiscalPeriod,
		Memo:         req.Memo,
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		arg.Date = date
	}

	entry, err := h.service.CreateReversing(ctx, middleware.ActorFromCtx(gctx), arg)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{entry}})
}

type dataDetail struct {
	Entry     domain.JournalEntry     `json:"entry"`
	Approvals []domain.ApprovalRecord `json:"approvals"`
}
type responseDetail struct {
	Data dataDetail `json:"data,omitempty"`
}

// Get handles http request to fetch an entry with its approval trail.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req idRequest
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

	detail, err := h.service.Get(ctx, req.ID)
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseDetail{Data: dataDetail{detail.Entry, detail.Approvals}})
}

type listRequest struct {
	EntityID     int32  `form:"entity_id" binding:"required,min=1"`
	Status       string `form:"status" binding:"omitempty,oneof=draft pending_approval approved posted"`
	FiscalYear   int    `form:"fiscal_year" binding:"omitempty,min=1900,max=9999"`
	FiscalPeriod int    `form:"fiscal_period" binding:"omitempty,min=1,max=12"`
	Limit        int32  `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset       int32  `form:"offset" binding:"omitempty,min=0"`
}

type dataEntries struct {
	Entries []domain.JournalEntry `json:"entries"`
}
type responseEntries struct {
	Data dataEntries `json:"data,omitempty"`
}

// List handles http request to list entries with optional filters.
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

	if req.Limit == 0 {
		req.Limit = 50
	}

	entries, err := h.service.List(ctx, domain.ListEntriesParams{
		EntityID:     req.EntityID,
		Status:       domain.EntryStatus(req.Status),
		FiscalYear:   req.FiscalYear,
		FiscalPeriod: req.FiscalPeriod,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseEntries{Data: dataEntries{entries}})
}

type periodRequest struct {
	EntityID int32 `json:"entity_id" binding:"required,min=1"`
	Year     int   `json:"year" binding:"required,min=1900,max=9999"`
	Period   int   `json:"period" binding:"required,min=1,max=12"`
}

type dataPeriod struct {
	Period domain.FiscalPeriod `json:"period"`
}
type responsePeriod struct {
	Data dataPeriod `json:"data,omitempty"`
}

// ClosePeriod handles http request to close a fiscal period against new entries.
func (h *Handler) ClosePeriod(gctx *gin.Context) {
	h.setPeriodStatus(gctx, domain.PeriodClosed)
}

// OpenPeriod handles http request to reopen a fiscal period.
func (h *Handler) OpenPeriod(gctx *gin.Context) {
	h.setPeriodStatus(gctx, domain.PeriodOpen)
}

func (h *Handler) setPeriodStatus(gctx *gin.Context, status domain.PeriodStatus) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req periodRequest
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

	var (
		period domain.FiscalPeriod
		err    error
	)

	if status == domain.PeriodClosed {
		period, err = h.service.ClosePeriod(ctx, req.EntityID, req.Year, req.Period)
	} else {
		period, err = h.service.OpenPeriod(ctx, req.EntityID, req.Year, req.Period)
	}

	if err != nil {
		writeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responsePeriod{Data: dataPeriod{period}})
}
