package console

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultsafe98-afk/admin-panel/internal/application/actions"
	"github.com/vaultsafe98-afk/admin-panel/internal/application/listing"
	"github.com/vaultsafe98-afk/admin-panel/internal/application/polling"
	"github.com/vaultsafe98-afk/admin-panel/internal/domain"
)

func (a *App) notificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Read and send notifications",
	}
	cmd.AddCommand(
		a.notificationsListCommand(),
		a.notificationsSendCommand(),
		a.notificationsReadCommand(),
		a.notificationsReadAllCommand(),
		a.notificationsWatchCommand(),
	)
	return cmd
}

func (a *App) notificationsListCommand() *cobra.Command {
	var (
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := listing.New(func(ctx context.Context, page, pageSize int, _ listing.Filters) (listing.Result[domain.Notification], error) {
				items, total, err := a.Notifications.List(ctx, page, pageSize)
				if err != nil {
					return listing.Result[domain.Notification]{}, err
				}
				return listing.Result[domain.Notification]{Items: items, TotalCount: total}, nil
			}, pageSize, listing.WithPage[domain.Notification](page))
			defer ctrl.Close()

			if err := ctrl.Refetch(ctx); err != nil {
				return err
			}
			snap := ctrl.Snapshot()

			rows := make([][]string, 0, len(snap.Items))
			for _, n := range snap.Items {
				user := "-"
				if n.User != nil {
					user = truncate(n.User.FullName(), 24)
				}
				rows = append(rows, []string{
					n.ID,
					user,
					string(n.Type),
					string(n.Status),
					truncate(n.Message, 48),
					formatTime(n.CreatedAt),
				})
			}
			a.printTable([]string{"ID", "USER", "TYPE", "STATUS", "MESSAGE", "CREATED"}, rows)
			a.printPageFooter(snap.Page, snap.TotalPages(), snap.TotalCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", a.Config.Console.PageSize, "rows per page")
	return cmd
}

func (a *App) notificationActionController(onCompleted func(actions.Event)) *actions.Controller {
	return actions.New(
		func(ctx context.Context, recordID string, kind actions.Kind, in actions.Input) error {
			switch kind {
			case actions.KindSend:
				return a.Notifications.Send(ctx, in.RecipientID, in.Message, domain.NotificationType(in.NotificationType))
			case actions.KindMarkRead:
				return a.Notifications.MarkRead(ctx, recordID)
			default:
				return fmt.Errorf("unsupported notification action %q", kind)
			}
		},
		actions.WithValidator(actions.NotificationValidator),
		actions.WithCompletionFunc(onCompleted),
	)
}

func (a *App) notificationsSendCommand() *cobra.Command {
	var (
		userID    string
		message   string
		notifType string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			userID, err := a.prompt("Recipient user id", userID)
			if err != nil {
				return err
			}
			message, err := a.prompt("Message", message)
			if err != nil {
				return err
			}

			ctrl := a.notificationActionController(func(ev actions.Event) {
				a.printf("Notification sent to user %s.\n", ev.RecordID)
			})
			if err := ctrl.Open(nil, userID, actions.KindSend); err != nil {
				return err
			}
			in := actions.Input{RecipientID: userID, Message: message, NotificationType: notifType}
			if err := ctrl.SetInput(in); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "recipient user id (prompted when omitted)")
	cmd.Flags().StringVar(&message, "message", "", "message body (prompted when omitted)")
	cmd.Flags().StringVar(&notifType, "type", string(domain.NotificationTypeGeneral), "notification type (deposit, withdrawal, profit, general)")
	return cmd
}

func (a *App) notificationsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			ctrl := a.notificationActionController(func(ev actions.Event) {
				a.printf("Notification %s marked read.\n", ev.RecordID)
			})
			if err := ctrl.Open(nil, args[0], actions.KindMarkRead); err != nil {
				return err
			}
			return ctrl.Submit(ctx)
		},
	}
}

func (a *App) notificationsReadAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}
			if err := a.Notifications.MarkAllRead(ctx); err != nil {
				return err
			}
			a.printf("All notifications marked read.\n")
			return nil
		},
	}
}

func (a *App) notificationsWatchCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the unread count until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			last := -1
			poller := polling.New(interval, func(ctx context.Context) error {
				count, err := a.Notifications.UnreadCount(ctx)
				if err != nil {
					return err
				}
				if count != last {
					a.printf("%s  unread: %d\n", time.Now().Format(time.Kitchen), count)
					last = count
				}
				return nil
			}, a.Logger)

			if err := poller.Start(ctx); err != nil {
				return err
			}
			defer poller.Stop()

			<-ctx.Done()
			a.printf("\n")
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", a.Config.Console.PollInterval, "poll interval")
	return cmd
}
