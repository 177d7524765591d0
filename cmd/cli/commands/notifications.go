package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

// NotificationsCmd creates the notifications command
func NotificationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unreadOnly, _ := cmd.Flags().GetBool("unread")

			notifications, err := services.ListNotifications(app.Ctx, app.Database)
			if err != nil {
				return err
			}
			unread := services.CountUnread(notifications)

			fmt.Fprintf(app.Out, "\n%d notifications, %d unread\n\n", len(notifications), unread)
			for _, n := range notifications {
				if unreadOnly && n.Read {
					continue
				}
				renderNotification(app.Out, n)
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().Bool("unread", false, "Only show unread notifications")

	return cmd
}

// MarkReadCmd creates the markRead command
func MarkReadCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "markRead [notification_id]",
		Short: "Mark one notification as read (all of them when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := services.MarkAsRead(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "✓ Notification %s marked as read\n", args[0])
				return nil
			}

			count, err := services.MarkAllAsRead(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "✓ Marked %d notifications as read\n", count)
			return nil
		},
	}
}

// NotifyCmd creates the notify command
func NotifyCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify <type> <title> <message>",
		Short: "Add a notification (general, emergency, appointment, blood_request, donation_scheduled)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			if from == "" {
				if session, err := services.CurrentSession(app.Ctx, app.Database); err == nil {
					from = session.DisplayName()
				}
			}

			notification, err := services.AddNotification(app.Ctx, app.Database, app.Alerter, app.Logger, app.now(), services.NewNotification{
				Type:    model.NotificationType(strings.ToLower(args[0])),
				Title:   args[1],
				Message: args[2],
				From:    from,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "✓ Notification %s added\n", notification.ID)
			return nil
		},
	}

	cmd.Flags().String("from", "", "Sender shown on the notification (defaults to the session)")

	return cmd
}
