// Package console is the view layer: thin cobra commands that wire the
// list and action controllers to the resource gateways. Everything here is
// presentation; the state machines live under internal/application.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/session"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/authgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/depositgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/notifygw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/pendinggw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/reportsgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/settingsgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/usergw"
	"github.com/vaultsafe98-afk/admin-panel/internal/gateways/withdrawalgw"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/api"
	"github.com/vaultsafe98-afk/admin-panel/internal/infrastructure/credstore"
	"github.com/vaultsafe98-afk/admin-panel/pkg/config"
	"github.com/vaultsafe98-afk/admin-panel/pkg/logger"
)

type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Creds  *credstore.Store
	Client *api.Client

	Session       session.ISessionService
	Auth          authgw.IAuthGateway
	Users         usergw.IUserGateway
	Pending       pendinggw.IPendingUserGateway
	Deposits      depositgw.IDepositGateway
	Withdrawals   withdrawalgw.IWithdrawalGateway
	Notifications notifygw.INotificationGateway
	Settings      settingsgw.ISettingsGateway
	Reports       reportsgw.IReportsGateway

	out io.Writer
	in  *bufio.Reader
}

func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.NewWithConfig(cfg.Logging)

	credPath, err := cfg.CredentialsPath()
	if err != nil {
		return nil, err
	}
	creds := credstore.New(credPath)

	a := &App{
		Config: cfg,
		Logger: log,
		Creds:  creds,
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
	}

	// The client publishes session expiry; the app is the one subscriber
	// and owns the user-facing side of it. The callback is idempotent.
	client := api.New(cfg.API, creds, log, api.WithSessionExpiredFunc(a.sessionExpired))
	a.Client = client

	a.Auth = authgw.New(client, log)
	a.Session = session.New(a.Auth, creds, log)
	a.Users = usergw.New(client, log)
	a.Pending = pendinggw.New(client, log)
	a.Deposits = depositgw.New(client, log)
	a.Withdrawals = withdrawalgw.New(client, log)
	a.Notifications = notifygw.New(client, log)
	a.Settings = settingsgw.New(client, log)
	a.Reports = reportsgw.New(client, log)

	return a, nil
}

func (a *App) sessionExpired() {
	if a.Session != nil {
		a.Session.Invalidate()
	}
	fmt.Fprintln(os.Stderr, "Session expired. Run `vsadmin login` to sign in again.")
}

func Execute() {
	a, err := NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vsadmin:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.RootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "vsadmin:", err)
		os.Exit(1)
	}
}

func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vsadmin",
		Short:         "VaultSafe administrative console",
		Long:          "vsadmin reviews signups, deposits and withdrawals, manages users and notifications, and edits platform settings over the VaultSafe admin API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.dashboardCommand(),
		a.usersCommand(),
		a.pendingCommand(),
		a.depositsCommand(),
		a.withdrawalsCommand(),
		a.notificationsCommand(),
		a.settingsCommand(),
	)
	return root
}

// requireSession restores the persisted session and fails the command when
// the terminal state is anything but authenticated.
func (a *App) requireSession(ctx context.Context) error {
	sess := a.Session.Restore(ctx)
	switch sess.State {
	case session.StateAuthenticated:
		return nil
	case session.StateUnauthenticated:
		return errors.New("not logged in; run `vsadmin login`")
	default:
		return errors.New("session state unresolved")
	}
}
