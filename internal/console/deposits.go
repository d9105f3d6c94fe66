package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/actions"
	"github.com/vaultsafe98-afk/admin-panel/internal/application/listing"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/pkg/currency"
)

func (a *App) depositsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposits",
		Short: "Review deposit requests",
	}
	cmd.AddCommand(
		a.depositsListCommand(),
		a.transferDecisionCommand("deposit", actions.KindApprove, a.Deposits.Approve),
		a.transferDecisionCommand("deposit", actions.KindReject, a.Deposits.Reject),
	)
	return cmd
}

func (a *App) depositsListCommand() *cobra.Command {
	var (
		page     int
		pageSize int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deposits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := listing.New(func(ctx context.Context, page, pageSize int, filters listing.Filters) (listing.Result[domain.Deposit], error) {
				items, total, err := a.Deposits.List(ctx, page, pageSize, filters["status"])
				if err != nil {
					return listing.Result[domain.Deposit]{}, err
				}
				return listing.Result[domain.Deposit]{Items: items, TotalCount: total}, nil
			}, pageSize,
				listing.WithPage[domain.Deposit](page),
				listing.WithFilter[domain.Deposit]("status", status),
			)
			defer ctrl.Close()

			if err := ctrl.Refetch(ctx); err != nil {
				return err
			}
			snap := ctrl.Snapshot()

			rows := make([][]string, 0, len(snap.Items))
			for _, d := range snap.Items {
				rows = append(rows, []string{
					d.ID,
					truncate(d.User.FullName(), 24),
					currency.FormatUSD(d.Amount),
					string(d.Status),
					truncate(d.AdminNotes, 30),
					formatTime(d.CreatedAt),
				})
			}
			a.printTable([]string{"ID", "USER", "AMOUNT", "STATUS", "NOTES", "CREATED"}, rows)
			a.printPageFooter(snap.Page, snap.TotalPages(), snap.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", a.Config.Console.PageSize, "rows per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, approved, rejected)")
	return cmd
}

// transferDecisionCommand builds the approve/reject command shared by the
// deposits and withdrawals pages. Admin notes are optional free text for
// both decisions.
func (a *App) transferDecisionCommand(noun string, kind actions.Kind, decide func(ctx context.Context, id, notes string) error) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <%s-id>", kind, noun),
		Short: fmt.Sprintf("%s a %s request", capitalize(string(kind)), noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := actions.New(
				func(ctx context.Context, recordID string, _ actions.Kind, in actions.Input) error {
					return decide(ctx, recordID, in.Notes)
				},
				actions.WithValidator(actions.TransferValidator),
				actions.WithCompletionFunc(func(ev actions.Event) {
					a.printf("%s %s: %s submitted.\n", capitalize(noun), ev.RecordID, ev.Kind)
				}),
			)

			if err := ctrl.Open(nil, args[0], kind); err != nil {
				return err
			}
			if err := ctrl.SetInput(actions.Input{Notes: notes}); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "admin notes (optional)")
	return cmd
}
