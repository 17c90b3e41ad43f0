package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/event_bus"
	"github.com/centsible/centsible/pkg/budget"
	"github.com/centsible/centsible/pkg/stats"
	"github.com/centsible/centsible/pkg/transaction"
	"github.com/centsible/centsible/pkg/user"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/joho/godotenv"
)

type Params struct {
	Config string `descr:"Path to the application config file" default:"./config/application.yaml"`
	User   string `descr:"Uid of the user to report on" default:""`
	Mode   string `descr:"Reporting window mode" alts:"all,year,month" default:"all"`
	Period string `descr:"Window period: YYYY for year mode, YYYY-MM for month mode" default:""`
}

func main() {
	boa.NewCmdT[Params]("centsible-report").
		WithShort("Print a spending summary and budget table").
		WithLong("Reads the configured database and prints the aggregated income, expenses, and 50/30/20 budget evaluation for the chosen reporting window.").
		WithRunFunc(func(params *Params) {
			_ = godotenv.Load()
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	cfg, err := config.Load(params.Config)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	userService := user.NewUserService(user.NewUserRepo(db))

	var reportUser user.User
	if params.User != "" {
		reportUser, err = userService.GetUserByUid(ctx, params.User)
		if err != nil {
			return fmt.Errorf("user %q: %w", params.User, err)
		}
	} else {
		users, err := userService.GetAllUsers(ctx)
		if err != nil {
			return err
		}
		if len(users) != 1 {
			return fmt.Errorf("found %d users, pick one with --user", len(users))
		}
		reportUser = users[0]
	}
	ctx = user.WithUser(ctx, reportUser)

	window := transaction.Window{Mode: transaction.WindowMode(params.Mode), Period: params.Period}
	if err := window.Validate(); err != nil {
		return fmt.Errorf("window mode %q period %q: %w", params.Mode, params.Period, err)
	}

	transactionService := transaction.NewService(transaction.NewRepo(db), event_bus.NewEventBus())
	statsService := stats.NewStatsService(transactionService)

	s, err := statsService.GetStats(ctx, window)
	if err != nil {
		return err
	}

	printSummary(reportUser, window, s)
	printBudget(budget.Evaluate(s, budget.TargetsFromConfig(cfg.Budget)))
	return nil
}

func printSummary(u user.User, window transaction.Window, s stats.Stats) {
	period := string(window.Mode)
	if window.Period != "" {
		period = window.Period
	}
	fmt.Printf("Report for %s (%s)\n\n", u.Username, period)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"", "Amount"})
	t.AppendRow(table.Row{"Total income", s.TotalIncome.String()})
	t.AppendRow(table.Row{"Total expenses", s.TotalExpenses.String()})
	t.AppendSeparator()
	balance := text.FgGreen.Sprint(s.Balance.String())
	if s.Balance.Cents < 0 {
		balance = text.FgRed.Sprint(s.Balance.String())
	}
	t.AppendRow(table.Row{text.Bold.Sprint("Balance"), balance})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.SetStyle(table.StyleRounded)
	t.Render()
	fmt.Println()
}

func printBudget(categories []budget.BudgetCategory) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Category", "Target", "Spent", "Of income", "Status"})
	for _, c := range categories {
		status := text.FgGreen.Sprint("OK")
		if c.IsOver {
			status = text.FgRed.Sprintf("over by %s", c.OverAmount.String())
		}
		t.AppendRow(table.Row{
			string(c.Name),
			c.TargetAmount.String(),
			c.Value.String(),
			fmt.Sprintf("%.1f%%", c.Percent),
			status,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
