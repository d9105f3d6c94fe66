package console

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/session"
)

func (a *App) loginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := a.prompt("Email", email)
			if err != nil {
				return err
			}
			password, err := a.promptPassword("Password")
			if err != nil {
				return err
			}

			sess, err := a.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			a.printf("Logged in as %s <%s>\n", sess.Admin.FullName(), sess.Admin.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (prompted when omitted)")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Session.Logout(); err != nil {
				return err
			}
			a.printf("Logged out.\n")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current admin identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.Session.Restore(cmd.Context())
			if sess.State != session.StateAuthenticated {
				a.printf("Not logged in.\n")
				return nil
			}

			a.printf("%s <%s> (%s)\n", sess.Admin.FullName(), sess.Admin.Email, sess.Admin.Role)
			if !sess.ExpiresAt.IsZero() {
				a.printf("Session expires %s (%s)\n",
					formatTime(sess.ExpiresAt),
					time.Until(sess.ExpiresAt).Round(time.Minute))
			}
			return nil
		},
	}
}
