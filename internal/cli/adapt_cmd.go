package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/spf13/cobra"
)

func newAdaptCmd(app *App) *cobra.Command {
	var date time.Time
	var window int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "adapt",
		Short: "Analyze recent logs and weight trend and propose adjustments",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewAdaptationRequest(app.ProfileID)
			day := dateOr(date, app.now())
			req.Date = &day
			req.WindowDays = app.WindowDays
			if cmd.Flags().Changed("window") {
				req.WindowDays = window
			}

			resp, err := app.Adaptation.Report(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, contract.FromReport(resp.Report))
			}
			fmt.Fprintln(out, formatter.FormatAdaptation(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, app.now, "Last day of the window (default today)")
	cmd.Flags().IntVarP(&window, "window", "w", 0, "Window size in days (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}
