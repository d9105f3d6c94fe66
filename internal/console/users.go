package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/actions"
	"github.com/vaultsafe98-afk/admin-panel/internal/application/listing"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
	"github.com/vaultsafe98-afk/admin-panel/pkg/currency"
)

func (a *App) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and manage platform users",
	}
	cmd.AddCommand(
		a.usersListCommand(),
		a.userBlockCommand(),
		a.userUnblockCommand(),
		a.userResetPasswordCommand(),
		a.userSetBalanceCommand(),
		a.userSetAddressCommand(),
	)
	return cmd
}

func (a *App) usersListCommand() *cobra.Command {
	var (
		page     int
		pageSize int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := listing.New(a.fetchUsers, pageSize,
				listing.WithPage[domain.User](page),
				listing.WithFilter[domain.User]("search", search),
			)
			defer ctrl.Close()

			if err := ctrl.Refetch(ctx); err != nil {
				return err
			}
			snap := ctrl.Snapshot()

			rows := make([][]string, 0, len(snap.Items))
			for _, u := range snap.Items {
				rows = append(rows, []string{
					u.ID,
					truncate(u.FullName(), 24),
					u.Email,
					currency.FormatUSD(u.DepositAmount),
					currency.FormatUSD(u.ProfitAmount),
					currency.FormatUSD(u.TotalAmount),
					string(u.Status),
					u.TRCAddress,
				})
			}
			a.printTable([]string{"ID", "NAME", "EMAIL", "DEPOSIT", "PROFIT", "TOTAL", "STATUS", "TRC ADDRESS"}, rows)
			a.printPageFooter(snap.Page, snap.TotalPages(), snap.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", a.Config.Console.PageSize, "rows per page")
	cmd.Flags().StringVar(&search, "search", "", "search by name or email")
	return cmd
}

func (a *App) fetchUsers(ctx context.Context, page, pageSize int, filters listing.Filters) (listing.Result[domain.User], error) {
	items, total, err := a.Users.List(ctx, page, pageSize, filters["search"])
	if err != nil {
		return listing.Result[domain.User]{}, err
	}
	return listing.Result[domain.User]{Items: items, TotalCount: total}, nil
}

// userActionController maps user-page action kinds onto the user gateway.
// Reset-password and balance results are reported through the completion
// callback built by the individual commands.
func (a *App) userActionController(onCompleted func(actions.Event), out *userActionResult) *actions.Controller {
	return actions.New(
		func(ctx context.Context, recordID string, kind actions.Kind, in actions.Input) error {
			switch kind {
			case actions.KindBlock:
				return a.Users.Block(ctx, recordID)
			case actions.KindUnblock:
				return a.Users.Unblock(ctx, recordID)
			case actions.KindResetPassword:
				password, err := a.Users.ResetPassword(ctx, recordID)
				if err != nil {
					return err
				}
				out.newPassword = password
				return nil
			case actions.KindAdjustBalance:
				balance, err := parseBalance(in.NewBalance)
				if err != nil {
					return err
				}
				change, err := a.Users.AdjustBalance(ctx, recordID, balance, in.Reason)
				if err != nil {
					return err
				}
				out.balanceChange = change
				return nil
			case actions.KindSetPayoutAddress:
				address, err := a.Users.SetPayoutAddress(ctx, recordID, in.PayoutAddress)
				if err != nil {
					return err
				}
				out.trcAddress = address
				return nil
			default:
				return fmt.Errorf("unsupported user action %q", kind)
			}
		},
		actions.WithValidator(actions.UserValidator),
		actions.WithCompletionFunc(onCompleted),
	)
}

// parseBalance re-parses the validated balance string for the wire call.
func parseBalance(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

type userActionResult struct {
	newPassword   string
	balanceChange *domain.BalanceChange
	trcAddress    string
}

func (a *App) runUserAction(ctx context.Context, userID string, kind actions.Kind, in actions.Input, done func(actions.Event, userActionResult)) error {
	var result userActionResult
	ctrl := a.userActionController(func(ev actions.Event) {
		done(ev, result)
	}, &result)

	if err := ctrl.Open(nil, userID, kind); err != nil {
		return err
	}
	if err := ctrl.SetInput(in); err != nil {
		return err
	}
	return ctrl.Submit(ctx)
}

func (a *App) userBlockCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "block <user-id>",
		Short: "Block a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}
			if !yes {
				ok, err := a.confirm(fmt.Sprintf("Block user %s?", args[0]))
				if err != nil || !ok {
					return err
				}
			}
			return a.runUserAction(ctx, args[0], actions.KindBlock, actions.Input{},
				func(ev actions.Event, _ userActionResult) {
					a.printf("User %s blocked.\n", ev.RecordID)
				})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func (a *App) userUnblockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <user-id>",
		Short: "Unblock a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}
			return a.runUserAction(ctx, args[0], actions.KindUnblock, actions.Input{},
				func(ev actions.Event, _ userActionResult) {
					a.printf("User %s unblocked.\n", ev.RecordID)
				})
		},
	}
}

func (a *App) userResetPasswordCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-password <user-id>",
		Short: "Generate a new password for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}
			if !yes {
				ok, err := a.confirm(fmt.Sprintf("Reset password for user %s?", args[0]))
				if err != nil || !ok {
					return err
				}
			}
			return a.runUserAction(ctx, args[0], actions.KindResetPassword, actions.Input{},
				func(ev actions.Event, result userActionResult) {
					a.printf("Password reset for user %s. New password: %s\n", ev.RecordID, result.newPassword)
				})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func (a *App) userSetBalanceCommand() *cobra.Command {
	var (
		balance string
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "set-balance <user-id>",
		Short: "Adjust a user's total balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			balance, err := a.prompt("New balance", balance)
			if err != nil {
				return err
			}
			reason, err := a.prompt("Reason", reason)
			if err != nil {
				return err
			}

			in := actions.Input{NewBalance: balance, Reason: reason}
			return a.runUserAction(ctx, args[0], actions.KindAdjustBalance, in,
				func(ev actions.Event, result userActionResult) {
					a.printf("Balance adjusted for user %s. Change: %s\n",
						ev.RecordID, currency.FormatChange(result.balanceChange.BalanceChange))
				})
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "", "new total balance (prompted when omitted)")
	cmd.Flags().StringVar(&reason, "reason", "", "adjustment reason (prompted when omitted)")
	return cmd
}

func (a *App) userSetAddressCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "set-address <user-id>",
		Short: "Update a user's TRC payout address",
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

			in := actions.Input{PayoutAddress: address}
			return a.runUserAction(ctx, args[0], actions.KindSetPayoutAddress, in,
				func(ev actions.Event, result userActionResult) {
					a.printf("Payout address updated for user %s: %s\n", ev.RecordID, result.trcAddress)
				})
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "TRC-20 address (prompted when omitted)")
	return cmd
}
