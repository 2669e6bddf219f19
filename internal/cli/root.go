package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/meridian/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	Logs        service.LogService
	Plans       service.PlanService
	Adaptation  service.AdaptationService
	Calibration service.CalibrationService

	// ProfileID is the default for --profile.
	ProfileID string
	// WindowDays is the default adaptation window.
	WindowDays int
	HTTPAddr   string

	// Serve runs the HTTP API until ctx is cancelled. Nil disables the
	// serve command.
	Serve func(ctx context.Context, addr string) error

	// IsInteractive reports whether stdin is a terminal; forms are only
	// shown when it returns true.
	IsInteractive func() bool
	// Now is the clock for default dates.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "meridian" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "meridian",
		Short:         "Daily health plan from your logs, weight trend and life context",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&app.ProfileID, "profile", "p", app.ProfileID, "Profile ID")

	root.AddCommand(
		newProfileCmd(app),
		newLogCmd(app),
		newWeightCmd(app),
		newPlanCmd(app),
		newAdaptCmd(app),
		newCalibrateCmd(app),
		newServeCmd(app),
	)

	return root
}
