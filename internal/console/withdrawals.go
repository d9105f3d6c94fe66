package console

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/actions"
	"github.com/vaultsafe98-afk/admin-panel/internal/application/listing"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/pkg/currency"
)

func (a *App) withdrawalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "Review withdrawal requests",
	}
	cmd.AddCommand(
		a.withdrawalsListCommand(),
		a.transferDecisionCommand("withdrawal", actions.KindApprove, a.Withdrawals.Approve),
		a.transferDecisionCommand("withdrawal", actions.KindReject, a.Withdrawals.Reject),
	)
	return cmd
}

func (a *App) withdrawalsListCommand() *cobra.Command {
	var (
		page     int
		pageSize int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List withdrawals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := listing.New(func(ctx context.Context, page, pageSize int, filters listing.Filters) (listing.Result[domain.Withdrawal], error) {
				items, total, err := a.Withdrawals.List(ctx, page, pageSize, filters["status"])
				if err != nil {
					return listing.Result[domain.Withdrawal]{}, err
				}
				return listing.Result[domain.Withdrawal]{Items: items, TotalCount: total}, nil
			}, pageSize,
				listing.WithPage[domain.Withdrawal](page),
				listing.WithFilter[domain.Withdrawal]("status", status),
			)
			defer ctrl.Close()

			if err := ctrl.Refetch(ctx); err != nil {
				return err
			}
			snap := ctrl.Snapshot()

			rows := make([][]string, 0, len(snap.Items))
			for _, w := range snap.Items {
				rows = append(rows, []string{
					w.ID,
					truncate(w.User.FullName(), 24),
					currency.FormatUSD(w.Amount),
					w.Platform,
					truncate(w.WalletAddress, 36),
					string(w.Status),
					formatTime(w.CreatedAt),
				})
			}
			a.printTable([]string{"ID", "USER", "AMOUNT", "PLATFORM", "WALLET", "STATUS", "CREATED"}, rows)
			a.printPageFooter(snap.Page, snap.TotalPages(), snap.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", a.Config.Console.PageSize, "rows per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, approved, rejected)")
	return cmd
}
