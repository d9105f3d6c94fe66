package console

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/actions"
	"github.com/vaultsafe98-afk/admin-panel/pkg/currency"
)

func (a *App) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and edit platform settings",
	}
	cmd.AddCommand(
		a.settingsShowCommand(),
		a.settingsSetWalletCommand(),
	)
	return cmd
}

func (a *App) settingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the platform settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			settings, err := a.Settings.Get(ctx)
			if err != nil {
				return err
			}

			a.printTable(
				[]string{"SETTING", "VALUE"},
				[][]string{
					{"Wallet address", settings.WalletAddress},
					{"Maintenance mode", strconv.FormatBool(settings.MaintenanceMode)},
					{"Profit rate", currency.FormatRate(settings.ProfitRate)},
					{"Minimum deposit", currency.FormatUSD(settings.MinimumDeposit)},
					{"Maximum withdrawal", currency.FormatUSD(settings.MaximumWithdrawal)},
				},
			)
			return nil
		},
	}
}

func (a *App) settingsSetWalletCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-wallet <address>",
		Short: "Update the platform deposit wallet address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			// The platform wallet is a TRC-20 address like user payout
			// addresses, so it goes through the same shape check.
			ctrl := actions.New(
				func(ctx context.Context, _ string, _ actions.Kind, in actions.Input) error {
					return a.Settings.UpdateWalletAddress(ctx, in.PayoutAddress)
				},
				actions.WithValidator(actions.UserValidator),
				actions.WithCompletionFunc(func(ev actions.Event) {
					a.printf("Wallet address updated.\n")
				}),
			)

			if err := ctrl.Open(nil, "platform-wallet", actions.KindSetPayoutAddress); err != nil {
				return err
			}
			if err := ctrl.SetInput(actions.Input{PayoutAddress: args[0]}); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}
}
