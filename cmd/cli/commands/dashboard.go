package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the current session's role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			session, err := services.CurrentSession(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			in, err := services.DashboardInput(app.Ctx, app.Database, *session, app.now())
			if err != nil {
				return err
			}

			view, err := dashboard.ForRole(in, app.DashboardOptions)
			if err != nil {
				return err
			}

			app.Logger.Debug("dashboard command", zap.String("role", string(session.Role)))

			if asJSON {
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			fmt.Fprintln(app.Out)
			if err := renderDashboard(app.Out, view); err != nil {
				return err
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the dashboard as JSON")

	return cmd
}
