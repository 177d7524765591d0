package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/save-a-life/pkg/core/directory"
	"github.com/jakechorley/save-a-life/pkg/core/model"
)

// FindDonorsCmd creates the findDonors command
func FindDonorsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "findDonors [blood_type]",
		Short: "Search the donor directory, optionally by blood type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bloodType model.BloodType
			if len(args) == 1 {
				bt, err := parseBloodType(args[0])
				if err != nil {
					return err
				}
				bloodType = bt
			}

			donors := directory.SearchDonors(bloodType)

			fmt.Fprintf(app.Out, "\nFound %d donors:\n\n", len(donors))
			for _, d := range donors {
				fmt.Fprintf(app.Out, "- %s (%s) - %s - %s %s\n",
					d.Name, d.BloodType, d.Location, d.Phone, dimStyle.Render(d.Availability))
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}

// BloodBanksCmd creates the bloodBanks command
func BloodBanksCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bloodBanks",
		Short: "List blood banks with their stock summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banks := directory.BloodBanks()

			fmt.Fprintf(app.Out, "\nFound %d blood banks:\n\n", len(banks))
			for _, b := range banks {
				fmt.Fprintf(app.Out, "- %s - %s - %s\n", b.Name, b.Location, b.Phone)

				stock := make([]string, 0, len(b.Inventory))
				for _, bt := range model.AllBloodTypes {
					if units, ok := b.Inventory[bt]; ok {
						stock = append(stock, fmt.Sprintf("%s:%d", bt, units))
					}
				}
				fmt.Fprintf(app.Out, "  %s\n", dimStyle.Render(strings.Join(stock, "  ")))
			}
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}
