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

func (a *App) pendingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Review pending signups",
	}
	cmd.AddCommand(
		a.pendingListCommand(),
		a.pendingApproveCommand(),
		a.pendingRejectCommand(),
	)
	return cmd
}

func (a *App) pendingListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List signups awaiting a decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			// The pending queue is unpaginated on the wire; the fetch
			// returns the whole set regardless of page.
			ctrl := listing.New(func(ctx context.Context, _, _ int, _ listing.Filters) (listing.Result[domain.PendingUser], error) {
				items, err := a.Pending.List(ctx)
				if err != nil {
					return listing.Result[domain.PendingUser]{}, err
				}
				return listing.Result[domain.PendingUser]{Items: items, TotalCount: len(items)}, nil
			}, a.Config.Console.PageSize)
			defer ctrl.Close()

			if err := ctrl.Refetch(ctx); err != nil {
				return err
			}
			snap := ctrl.Snapshot()

			if len(snap.Items) == 0 {
				a.printf("No pending signups.\n")
				return nil
			}

			rows := make([][]string, 0, len(snap.Items))
			for _, u := range snap.Items {
				rows = append(rows, []string{
					u.ID,
					truncate(u.FullName(), 24),
					u.Email,
					currency.FormatUSD(u.DepositAmount),
					formatTime(u.CreatedAt),
				})
			}
			a.printTable([]string{"ID", "NAME", "EMAIL", "REQUESTED DEPOSIT", "SIGNED UP"}, rows)
			return nil
		},
	}
}

func (a *App) pendingActionController(onCompleted func(actions.Event)) *actions.Controller {
	return actions.New(
		func(ctx context.Context, recordID string, kind actions.Kind, in actions.Input) error {
			switch kind {
			case actions.KindApprove:
				return a.Pending.Approve(ctx, recordID, in.PayoutAddress)
			case actions.KindReject:
				return a.Pending.Reject(ctx, recordID, in.Reason)
			default:
				return fmt.Errorf("unsupported pending-user action %q", kind)
			}
		},
		actions.WithValidator(actions.PendingUserValidator),
		actions.WithCompletionFunc(onCompleted),
	)
}

func (a *App) pendingApproveCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "approve <user-id>",
		Short: "Approve a signup and assign its payout address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			address, err := a.prompt("TRC address", address)
			if err != nil {
				return err
			}

			ctrl := a.pendingActionController(func(ev actions.Event) {
				a.printf("Signup %s approved.\n", ev.RecordID)
			})
			if err := ctrl.Open(nil, args[0], actions.KindApprove); err != nil {
				return err
			}
			if err := ctrl.SetInput(actions.Input{PayoutAddress: address}); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "TRC-20 payout address (prompted when omitted)")
	return cmd
}

func (a *App) pendingRejectCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <user-id>",
		Short: "Reject a signup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			reason, err := a.prompt("Rejection reason", reason)
			if err != nil {
				return err
			}

			ctrl := a.pendingActionController(func(ev actions.Event) {
				a.printf("Signup %s rejected.\n", ev.RecordID)
			})
			if err := ctrl.Open(nil, args[0], actions.KindReject); err != nil {
				return err
			}
			if err := ctrl.SetInput(actions.Input{Reason: reason}); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "rejection reason (prompted when omitted)")
	return cmd
}
