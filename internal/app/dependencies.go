package app

import (
	"database/sql"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/internal/utils"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/flow"
	"github.com/centsible/centsible/pkg/google"
	"github.com/centsible/centsible/pkg/recurring"
	"github.com/centsible/centsible/pkg/stats"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	TransactionRepo    transaction.Repo
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	StatsService     stats.StatsService
	CsvStatsRenderer *stats.CsvStatsRendererImpl
	XlsxRenderer     *stats.XlsxStatsRenderer
	ChartRenderer    *stats.ChartRenderer
	StatsHandler     *stats.StatsHandler

	BudgetTargets budget.Targets
	BudgetHandler *budget.BudgetHandler

	FlowHandler *flow.FlowHandler

	RecurringRepo    recurring.Repo
	RecurringService recurring.Service
	RecurringHandler *recurring.Handler

	GoogleAuth     *google.GoogleAuth
	SheetsExporter *google.SheetsExporter
	SheetsHandler  *google.SheetsHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.TransactionRepo = transaction.NewRepo(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.EventBus)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.StatsService = stats.NewStatsService(deps.TransactionService)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()
	deps.XlsxRenderer = stats.NewXlsxStatsRenderer()
	deps.ChartRenderer = stats.NewChartRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvStatsRenderer, deps.XlsxRenderer, deps.ChartRenderer)

	deps.BudgetTargets = budget.TargetsFromConfig(cfg.Budget)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.StatsService, deps.BudgetTargets)

	deps.FlowHandler = flow.NewFlowHandler(deps.TransactionService, deps.BudgetTargets)

	deps.RecurringRepo = recurring.NewRepo(db)
	deps.RecurringService = recurring.NewService(deps.RecurringRepo, deps.TransactionService, deps.EventBus)
	deps.RecurringHandler = recurring.NewHandler(deps.RecurringService, deps.Clock)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.SheetsExporter = google.NewSheetsExporter(deps.GoogleAuth, deps.StatsService, deps.TransactionService)
	deps.SheetsHandler = google.NewSheetsHandler(deps.SheetsExporter)

	return deps
}
