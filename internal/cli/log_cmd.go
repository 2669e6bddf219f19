package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a day of health, looks or routine signals",
	}

	cmd.AddCommand(
		newLogHealthCmd(app),
		newLogLooksCmd(app),
		newLogRoutineCmd(app),
	)

	return cmd
}

func newLogHealthCmd(app *App) *cobra.Command {
	var date time.Time
	var skipReason string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Log sleep, stress, energy, workout and nutrition for a day",
		Long: "Log health signals for a day. Only the flags you pass are changed;\n" +
			"fields logged earlier for the same day are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day := dateOr(date, app.now())

			l, err := app.Logs.HealthLog(ctx, app.ProfileID, day)
			if errors.Is(err, repository.ErrNotFound) {
				l, err = &domain.DailyHealthLog{ProfileID: app.ProfileID, Date: day}, nil
			}
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			mergeFloat(&l.SleepHours, flagFloat(fs, "sleep"))
			mergeInt(&l.SleepQuality, flagInt(fs, "sleep-quality"))
			mergeInt(&l.StressLevel, flagInt(fs, "stress"))
			mergeInt(&l.Mood, flagInt(fs, "mood"))
			mergeInt(&l.Energy, flagInt(fs, "energy"))
			mergeInt(&l.Soreness, flagInt(fs, "soreness"))
			mergeFloat(&l.WaterLiters, flagFloat(fs, "water"))
			mergeFloat(&l.ProteinCompletionPct, flagFloat(fs, "protein-pct"))
			mergeFloat(&l.FoodCompliancePct, flagFloat(fs, "food-pct"))
			if ill := flagBool(fs, "ill"); ill != nil {
				l.Ill = *ill
			}
			if done := flagBool(fs, "workout-done"); done != nil {
				l.WorkoutDone = done
				if *done {
					l.WorkoutSkipped, l.SkipReason = false, ""
				}
			}
			if fs.Changed("skip-reason") {
				l.WorkoutSkipped = true
				l.SkipReason = domain.SkipReason(skipReason)
				no := false
				l.WorkoutDone = &no
			}

			if err := app.Logs.LogHealth(ctx, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged health for %s (%s)\n", app.ProfileID, day.Format(domain.DateLayout))
			return nil
		},
	}

	fs := cmd.Flags()
	addDateFlag(fs, &date, app.now, "Day to log (default today)")
	fs.Float64("sleep", 0, "Hours slept")
	fs.Int("sleep-quality", 0, "Sleep quality 1-10")
	fs.Int("stress", 0, "Stress level 1-10")
	fs.Int("mood", 0, "Mood 1-10")
	fs.Int("energy", 0, "Energy 1-10")
	fs.Int("soreness", 0, "Muscle soreness 1-10")
	fs.Float64("water", 0, "Water in liters")
	fs.Float64("protein-pct", 0, "Percent of protein target eaten")
	fs.Float64("food-pct", 0, "Percent of meal plan followed")
	fs.Bool("ill", false, "Feeling ill")
	fs.Bool("workout-done", false, "Completed the planned workout")
	fs.StringVar(&skipReason, "skip-reason", "", "Skipped the workout: tired, busy, sick, injured, travel, unmotivated or other")

	return cmd
}

func newLogLooksCmd(app *App) *cobra.Command {
	var date time.Time
	var am, pm, hair, grooming bool

	cmd := &cobra.Command{
		Use:   "looks",
		Short: "Log skincare and grooming for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dateOr(date, app.now())
			l := &domain.DailyLooksLog{
				ProfileID:     app.ProfileID,
				Date:          day,
				SkincareAM:    am,
				SkincarePM:    pm,
				SkinCondition: flagInt(cmd.Flags(), "skin"),
				HairCare:      hair,
				GroomingDone:  grooming,
			}
			if err := app.Logs.LogLooks(context.Background(), l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged looks for %s (%s)\n", app.ProfileID, day.Format(domain.DateLayout))
			return nil
		},
	}

	fs := cmd.Flags()
	addDateFlag(fs, &date, app.now, "Day to log (default today)")
	fs.BoolVar(&am, "am", false, "Morning skincare done")
	fs.BoolVar(&pm, "pm", false, "Evening skincare done")
	fs.Int("skin", 0, "Skin condition 1-10")
	fs.BoolVar(&hair, "hair", false, "Hair care done")
	fs.BoolVar(&grooming, "grooming", false, "Grooming done")

	return cmd
}

func newLogRoutineCmd(app *App) *cobra.Command {
	var date time.Time
	var wake, bed string
	var done, total int

	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Log wake and bed times, habits and focus for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dateOr(date, app.now())
			fs := cmd.Flags()
			l := &domain.DailyRoutineLog{
				ProfileID:     app.ProfileID,
				Date:          day,
				WakeTime:      wake,
				BedTime:       bed,
				CompletionPct: flagFloat(fs, "completion"),
				ScreenTimeMin: flagInt(fs, "screen"),
				FocusMinutes:  flagInt(fs, "focus"),
				HabitsDone:    done,
				HabitsTotal:   total,
			}
			if err := app.Logs.LogRoutine(context.Background(), l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged routine for %s (%s)\n", app.ProfileID, day.Format(domain.DateLayout))
			return nil
		},
	}

	fs := cmd.Flags()
	addDateFlag(fs, &date, app.now, "Day to log (default today)")
	fs.StringVar(&wake, "wake", "", "Wake time HH:MM")
	fs.StringVar(&bed, "bed", "", "Bed time HH:MM")
	fs.Float64("completion", 0, "Routine completion percent")
	fs.Int("screen", 0, "Screen time in minutes")
	fs.Int("focus", 0, "Focused work in minutes")
	fs.IntVar(&done, "habits-done", 0, "Habits completed")
	fs.IntVar(&total, "habits-total", 0, "Habits planned")

	return cmd
}

func mergeFloat(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}

func mergeInt(dst **int, v *int) {
	if v != nil {
		*dst = v
	}
}
