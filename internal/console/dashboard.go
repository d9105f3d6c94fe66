package console

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/polling"
	"github.com/vaultsafe98-afk/admin-panel/pkg/currency"
)

func (a *App) dashboardCommand() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the platform summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			if !watch {
				return a.renderDashboard(ctx)
			}

			poller := polling.New(interval, a.renderDashboard, a.Logger)
			if err := poller.Start(ctx); err != nil {
				return err
			}
			defer poller.Stop()

			<-ctx.Done()
			a.printf("\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "refresh on an interval until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", a.Config.Console.PollInterval, "refresh interval for --watch")
	return cmd
}

func (a *App) renderDashboard(ctx context.Context) error {
	stats, err := a.Reports.Summary(ctx)
	if err != nil {
		return err
	}

	a.printf("VaultSafe summary at %s\n\n", formatTime(time.Now()))
	a.printTable(
		[]string{"METRIC", "VALUE"},
		[][]string{
			{"Total users", itoa(stats.TotalUsers)},
			{"Total deposits", currency.FormatUSD(stats.TotalDeposits)},
			{"Total withdrawals", currency.FormatUSD(stats.TotalWithdrawals)},
			{"Total profits", currency.FormatUSD(stats.TotalProfits)},
			{"Pending deposits", itoa(stats.PendingDeposits)},
			{"Pending withdrawals", itoa(stats.PendingWithdrawals)},
		},
	)
	return nil
}
