package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newWeightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Record and review weight samples",
	}

	cmd.AddCommand(
		newWeightAddCmd(app),
		newWeightListCmd(app),
		newWeightPurgeCmd(app),
	)

	return cmd
}

func newWeightAddCmd(app *App) *cobra.Command {
	var date time.Time

	cmd := &cobra.Command{
		Use:   "add KG",
		Short: "Add a weight sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("weight must be a number in kg, got %q", args[0])
			}
			w := &domain.WeightSample{
				ProfileID:  app.ProfileID,
				Date:       dateOr(date, app.now()),
				WeightKG:   kg,
				BodyFatPct: flagFloat(cmd.Flags(), "body-fat"),
			}
			if err := app.Logs.AddWeight(context.Background(), w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", kg, w.Date.Format(domain.DateLayout))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, app.now, "Day of the measurement (default today)")
	cmd.Flags().Float64("body-fat", 0, "Body fat percent")

	return cmd
}

func newWeightListCmd(app *App) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent weight samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := app.Logs.ListWeights(context.Background(), app.ProfileID, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeights(samples))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", domain.MaxCalibrationPoints, "Number of samples to show")

	return cmd
}

func newWeightPurgeCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all weight samples for the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to purge without --yes")
				}
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete every weight sample for %s?", app.ProfileID)).
						Value(&yes),
				)).WithTheme(meridianHuhTheme()).WithShowHelp(false)
				if err := confirm.Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			n, err := app.Logs.PurgeWeights(context.Background(), app.ProfileID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d weight samples\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
