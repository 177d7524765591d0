package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

// RequestBloodCmd creates the requestBlood command
func RequestBloodCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requestBlood <blood_type> <units> <urgency>",
		Short: "Raise a blood request as the logged-in recipient or hospital",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bloodType, err := parseBloodType(args[0])
			if err != nil {
				return err
			}
			units, err := strconv.Atoi(args[1])
			if err != nil || units < 1 {
				return fmt.Errorf("units must be a positive integer, got: %s", args[1])
			}
			urgency, err := parseUrgency(args[2])
			if err != nil {
				return err
			}

			hospital, _ := cmd.Flags().GetString("hospital")
			description, _ := cmd.Flags().GetString("description")
			patient, _ := cmd.Flags().GetString("patient")
			department, _ := cmd.Flags().GetString("department")

			session, err := services.RequireRole(app.Ctx, app.Database, model.RoleRecipient, model.RoleHospital)
			if err != nil {
				return err
			}

			input, err := services.RequestFromForm(*session, services.RequestForm{
				BloodType:    bloodType,
				UnitsNeeded:  units,
				Urgency:      urgency,
				HospitalName: hospital,
				Description:  description,
				PatientID:    patient,
				Department:   department,
			})
			if err != nil {
				return err
			}

			request, err := services.CreateBloodRequest(app.Ctx, app.Database, app.Alerter, app.Logger, app.now(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "\n✓ Blood request created!\n\n")
			renderRequest(app.Out, *request)
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().String("hospital", "", "Hospital the patient is at (recipients)")
	cmd.Flags().String("description", "", "Free-text description")
	cmd.Flags().String("patient", "", "Patient ID (hospitals)")
	cmd.Flags().String("department", "", "Department (hospitals)")

	return cmd
}

// ListRequestsCmd creates the listRequests command
func ListRequestsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listRequests",
		Short: "List stored blood requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")

			requests, err := services.ListBloodRequests(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			if status != "" {
				want := parseRequestStatus(status)
				filtered := []model.BloodRequest{}
				for _, r := range requests {
					if r.Status == want {
						filtered = append(filtered, r)
					}
				}
				requests = filtered
			}

			app.Logger.Debug("listRequests command", zap.String("status", status), zap.Int("count", len(requests)))

			fmt.Fprintf(app.Out, "\nFound %d blood requests:\n\n", len(requests))
			renderRequests(app.Out, requests, 0)
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().String("status", "", "Only show requests with this status (Active, Fulfilled, Cancelled)")

	return cmd
}

// UpdateRequestCmd creates the updateRequest command
func UpdateRequestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "updateRequest <request_id> <status>",
		Short: "Mark a blood request Fulfilled or Cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := parseRequestStatus(args[1])
			if err := services.UpdateRequestStatus(app.Ctx, app.Database, app.Logger, args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "✓ Request %s is %s\n", args[0], status)
			return nil
		},
	}
}

// RequestDetailsCmd creates the requestDetails command
func RequestDetailsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "requestDetails <request_id>",
		Short: "Show one blood request and the donors who could give to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := services.GetRequestDetails(app.Ctx, app.Database, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(app.Out)
			renderRequest(app.Out, details.Request)
			if details.Request.Location != "" {
				fmt.Fprintf(app.Out, "      Location: %s\n", details.Request.Location)
			}
			fmt.Fprintf(app.Out, "      Created:  %s\n", details.Request.CreatedAt)

			section(app.Out, fmt.Sprintf("Compatible donors (%d)", len(details.CompatibleDonors)))
			for _, d := range details.CompatibleDonors {
				fmt.Fprintf(app.Out, "  %-16s %-4s %s  %s\n", d.Name, d.BloodType, d.Phone, dimStyle.Render(d.Location))
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}
