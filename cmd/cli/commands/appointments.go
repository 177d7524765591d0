package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

// ScheduleDonationCmd creates the scheduleDonation command
func ScheduleDonationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduleDonation <date> <time>",
		Short: "Book a donation as the logged-in donor (date YYYY-MM-DD, time HH:MM)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, _ := cmd.Flags().GetString("location")
			name, _ := cmd.Flags().GetString("name")

			session, err := services.RequireRole(app.Ctx, app.Database, model.RoleDonor)
			if err != nil {
				return err
			}

			input, err := services.AppointmentFromForm(*session, services.DonationForm{
				Date:     args[0],
				Time:     args[1],
				Location: location,
				Name:     name,
			})
			if err != nil {
				return err
			}

			appointment, err := services.ScheduleAppointment(app.Ctx, app.Database, app.Alerter, app.Logger, app.now(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Donation scheduled!\n\n")
			renderAppointment(app.Out, *appointment)
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().String("location", "hospital", "Where to donate: hospital or bloodbank")
	cmd.Flags().String("name", "", "Name of the hospital or blood bank (defaults to the nearest)")

	return cmd
}

// ListAppointmentsCmd creates the listAppointments command
func ListAppointmentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listAppointments",
		Short: "List stored donation appointments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appointments, err := services.ListAppointments(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\nFound %d appointments:\n\n", len(appointments))
			renderAppointments(app.Out, appointments, 0)
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}

// UpdateAppointmentCmd creates the updateAppointment command
func UpdateAppointmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updateAppointment <appointment_id> <status>",
		Short: "Mark a donation appointment Completed or Cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := parseAppointmentStatus(args[1])
			if err := services.UpdateAppointmentStatus(app.Ctx, app.Database, app.Logger, args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "✓ Appointment %s is %s\n", args[0], status)
			return nil
		},
	}
}
