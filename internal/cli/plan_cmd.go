package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/contract"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var date time.Time
	var mode string
	var goals []string
	var window int
	var asJSON, noSave bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the daily plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest(app.ProfileID)
			day := dateOr(date, app.now())
			req.Date = &day
			req.Mode = domain.UserMode(mode)
			req.Persist = !noSave
			req.WindowDays = app.WindowDays
			if cmd.Flags().Changed("window") {
				req.WindowDays = window
			}
			for _, g := range goals {
				req.Goals = append(req.Goals, domain.GoalType(g))
			}

			resp, err := app.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := contract.MarshalPlan(resp.Plan)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatPlan(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date, app.now, "Plan date (default today)")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ModeNormal), "Life context: normal, travel, sick, exam or festival")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "Secondary goals added to the profile goal")
	cmd.Flags().IntVar(&window, "window", 0, "Days of history for adaptation (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not store a plan snapshot")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
