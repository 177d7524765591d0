package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <email> <role>",
		Short: "Register as a donor, recipient, hospital or bloodbank and start a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			password, _ := cmd.Flags().GetString("password")
			phone, _ := cmd.Flags().GetString("phone")
			address, _ := cmd.Flags().GetString("address")
			bloodType, _ := cmd.Flags().GetString("blood-type")
			organisation, _ := cmd.Flags().GetString("organization")

			input := services.Registration{
				Name:             name,
				Email:            args[0],
				Password:         password,
				Role:             role,
				Phone:            phone,
				Address:          address,
				OrganizationName: organisation,
			}
			if bloodType != "" {
				bt, err := parseBloodType(bloodType)
				if err != nil {
					return err
				}
				input.BloodType = bt
			}

			session, err := services.Register(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Registered %s as %s\n", session.DisplayName(), session.Role)
			fmt.Fprintf(app.Out, "Session ID: %s\n", session.ID)
			fmt.Fprintf(app.Out, "Dashboard:  %s\n\n", session.Role.DashboardPath())
			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().StringP("password", "p", "", "Password (required, not stored)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("address", "", "Address")
	cmd.Flags().String("blood-type", "", "Blood type (required for donors and recipients)")
	cmd.Flags().String("organization", "", "Organisation name (required for hospitals and blood banks)")

	return cmd
}

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email> <role>",
		Short: "Start a session for an email and role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := parseRole(args[1])
			if err != nil {
				return err
			}
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")
			bloodType, _ := cmd.Flags().GetString("blood-type")
			organisation, _ := cmd.Flags().GetString("organization")

			input := services.Credentials{
				Email:            args[0],
				Password:         password,
				Role:             role,
				Name:             name,
				OrganizationName: organisation,
			}
			if bloodType != "" {
				bt, err := parseBloodType(bloodType)
				if err != nil {
					return err
				}
				input.BloodType = bt
			}

			session, err := services.Login(app.Ctx, app.Database, app.Logger, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Logged in as %s (%s)\n", session.Email, session.Role)
			fmt.Fprintf(app.Out, "Dashboard: %s\n\n", session.Role.DashboardPath())
			return nil
		},
	}

	cmd.Flags().StringP("password", "p", "", "Password (required, not checked)")
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("blood-type", "", "Blood type (donors and recipients)")
	cmd.Flags().String("organization", "", "Organisation name (hospitals and blood banks)")

	return cmd
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Ctx, app.Database, app.Logger); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "✓ Logged out")
			return nil
		},
	}
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := services.CurrentSession(app.Ctx, app.Database)
			if err != nil {
				return err
			}
			renderSession(app, *session)
			return nil
		},
	}
}

func renderSession(app *AppContext, session model.Session) {
	fmt.Fprintf(app.Out, "\n%s  %s\n", titleStyle.Render(session.DisplayName()), dimStyle.Render(session.ID))
	fmt.Fprintf(app.Out, "Role:  %s\n", session.Role)
	fmt.Fprintf(app.Out, "Email: %s\n", session.Email)
	if session.BloodType != "" {
		fmt.Fprintf(app.Out, "Blood type: %s\n", session.BloodType)
	}
	if session.Phone != "" {
		fmt.Fprintf(app.Out, "Phone: %s\n", session.Phone)
	}
	if session.Address != "" {
		fmt.Fprintf(app.Out, "Address: %s\n", session.Address)
	}
	fmt.Fprintln(app.Out)
}
