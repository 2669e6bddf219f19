package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/spf13/cobra"
)

func newCalibrateCmd(app *App) *cobra.Command {
	var samples int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Refine the expenditure estimate from the weight trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewCalibrateRequest(app.ProfileID)
			now := app.now()
			req.Now = &now
			if cmd.Flags().Changed("samples") {
				req.Samples = samples
			}

			resp, err := app.Calibration.Recalibrate(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, contract.FromCalibration(resp))
			}
			fmt.Fprintln(out, formatter.FormatCalibration(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&samples, "samples", domain.MaxCalibrationPoints, "Most recent weight samples to fit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
