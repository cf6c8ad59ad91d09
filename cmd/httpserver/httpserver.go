// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/accountdelivery"
	"github.com/finvera/ledger-core/internal/accountrepo"
	"github.com/finvera/ledger-core/internal/accountservice"
	"github.com/finvera/ledger-core/internal/bankfeed"
	"github.com/finvera/ledger-core/internal/banktxnrepo"
	"github.com/finvera/ledger-core/internal/billrepo"
	"github.com/finvera/ledger-core/internal/entrydelivery"
	"github.com/finvera/ledger-core/internal/entryrepo"
	"github.com/finvera/ledger-core/internal/entryservice"
	"github.com/finvera/ledger-core/internal/matchdelivery"
	"github.com/finvera/ledger-core/internal/matchservice"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/internal/periodrepo"
	"github.com/finvera/ledger-core/internal/postingservice"
	"github.com/finvera/ledger-core/internal/recondelivery"
	"github.com/finvera/ledger-core/internal/reconrepo"
	"github.com/finvera/ledger-core/internal/reconservice"
	"github.com/finvera/ledger-core/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
	Match  *matchservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	periodRepo := periodrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	banktxnRepo := banktxnrepo.NewRepoPGS(conn)
	billRepo := billrepo.NewRepoPGS(conn)
	reconRepo := reconrepo.NewRepoPGS(conn)

	tolerance := configpkg.MustDecimal(config.BalanceTolerance, "0.01")

	rules := matchservice.Rules{
		ExactWindowDays: config.MatchExactWindowDays,
		FuzzyWindowDays: config.MatchFuzzyWindowDays,
		AmountTolerance: configpkg.MustDecimal(config.MatchAmountTolerance, "0.01"),
		MinConfidence:   configpkg.MustDecimal(config.MatchMinConfidence, "0.5"),
	}

	accountService := accountservice.New(accountRepo)
	postingService := postingservice.New(entryRepo)
	entryService := entryservice.New(entryRepo, accountService, periodRepo, postingService, tolerance)
	matchService := matchservice.New(banktxnRepo, billRepo, rules)
	reconService := reconservice.New(reconRepo, tolerance)

	accountHandler := accountdelivery.NewHandler(accountService)
	entryHandler := entrydelivery.NewHandler(entryService)
	matchHandler := matchdelivery.NewHandler(matchService, bankfeed.DefaultRegistry())
	reconHandler := recondelivery.NewHandler(reconService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(gctx *gin.Context) {
		if err := conn.PingContext(gctx.Request.Context()); err != nil {
			gctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.GET("/entities/:entity/trial-balance", accountHandler.TrialBalance)

	engine.GET("/entries", entryHandler.List)
	engine.GET("/entries/:id", entryHandler.Get)

	engine.GET("/bank-accounts/:id/transactions", matchHandler.ListTransactions)
	engine.GET("/bank-transactions/:id", matchHandler.Get)
	engine.GET("/bills", matchHandler.ListBills)

	engine.GET("/reconciliations/:id", reconHandler.Get)
	engine.GET("/bank-accounts/:id/reconciliations/latest", reconHandler.Latest)

	// Every write records who performed it.
	actorRoutes := engine.Group("/").Use(middleware.Actor())

	actorRoutes.POST("/accounts", accountHandler.Create)
	actorRoutes.POST("/accounts/:id/deactivate", accountHandler.Deactivate)
	actorRoutes.POST("/accounts/:id/reactivate", accountHandler.Reactivate)
	actorRoutes.POST("/entities/:entity/chart-of-accounts", accountHandler.SeedChart)

	actorRoutes.POST("/entries", entryHandler.Create)
	actorRoutes.PATCH("/entries/:id", entryHandler.Update)
	actorRoutes.POST("/entries/:id/submit", entryHandler.Submit)
	actorRoutes.POST("/entries/:id/approve", entryHandler.Approve)
	actorRoutes.POST("/entries/:id/reject", entryHandler.Reject)
	actorRoutes.POST("/entries/:id/post", entryHandler.Post)
	actorRoutes.POST("/entries/:id/reverse", entryHandler.Reverse)
	actorRoutes.POST("/periods/close", entryHandler.ClosePeriod)
	actorRoutes.POST("/periods/open", entryHandler.OpenPeriod)

	actorRoutes.POST("/bank-accounts/:id/transactions", matchHandler.Ingest)
	actorRoutes.POST("/bank-accounts/:id/statement-files", matchHandler.UploadStatement)
	actorRoutes.POST("/bank-accounts/:id/match", matchHandler.RunPass)
	actorRoutes.POST("/bank-transactions/:id/match", matchHandler.Match)
	actorRoutes.POST("/bank-transactions/:id/unmatch", matchHandler.Unmatch)
	actorRoutes.POST("/bills", matchHandler.CreateBill)

	actorRoutes.POST("/bank-accounts/:id/reconciliations", reconHandler.Calculate)
	actorRoutes.POST("/reconciliations/:id/approve", reconHandler.Approve)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", accountdelivery.ValidCurrency); err != nil {
			return nil, errors.New("cannot register currency validator")
		}

		if err := v.RegisterValidation("accounttype", accountdelivery.ValidAccountType); err != nil {
			return nil, errors.New("cannot register accounttype validator")
		}

		if err := v.RegisterValidation("entrytype", entrydelivery.ValidEntryType); err != nil {
			return nil, errors.New("cannot register entrytype validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
		Match:  matchService,
	}

	return server, nil
}
