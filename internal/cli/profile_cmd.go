package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the active profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileInitCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile and its formula targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), app.ProfileID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("profile %q not found; run 'meridian profile init' or 'meridian profile set'", app.ProfileID)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

// loadOrNewProfile returns the stored profile, or an empty one carrying id
// when none exists yet.
func loadOrNewProfile(ctx context.Context, app *App, id string) (*domain.Profile, error) {
	p, err := app.Profiles.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Profile{ID: id, Diet: domain.DietOmnivore}, nil
	}
	return nil, err
}

func newProfileSetCmd(app *App) *cobra.Command {
	var sex, activity, goal, diet, job, cycle string
	var conditions []string
	var age, delta int
	var height, weight float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := loadOrNewProfile(ctx, app, app.ProfileID)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if fs.Changed("sex") {
				p.Sex = domain.Sex(strings.ToLower(sex))
			}
			if fs.Changed("age") {
				p.Age = age
			}
			if fs.Changed("height") {
				p.HeightCM = height
			}
			if fs.Changed("weight") {
				p.WeightKG = weight
			}
			if fs.Changed("activity") {
				p.ActivityLevel = domain.ActivityLevel(activity)
			}
			if fs.Changed("goal") {
				p.Goal = domain.GoalType(goal)
			}
			if fs.Changed("delta") {
				p.TargetDailyDeltaKcal = delta
			}
			if fs.Changed("diet") {
				p.Diet = domain.DietPreference(diet)
			}
			if fs.Changed("job") {
				p.Job = domain.JobType(job)
			}
			if fs.Changed("cycle") {
				p.CyclePhase = domain.CyclePhase(cycle)
			}
			if fs.Changed("conditions") {
				p.Conditions = nil
				for _, c := range conditions {
					if c = strings.TrimSpace(c); c != "" {
						p.Conditions = append(p.Conditions, domain.Condition(c))
					}
				}
			}

			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&sex, "sex", "", "male or female")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&activity, "activity", "", "sedentary, light, moderate, active or very_active")
	cmd.Flags().StringVar(&goal, "goal", "", "fat_loss, maintenance or muscle_gain")
	cmd.Flags().IntVar(&delta, "delta", 0, "Intended daily energy balance in kcal (negative for a deficit)")
	cmd.Flags().StringVar(&diet, "diet", "", "omnivore, vegetarian, vegan, keto or intermittent_fasting")
	cmd.Flags().StringVar(&job, "job", "", "desk, active, shift or student")
	cmd.Flags().StringVar(&cycle, "cycle", "", "Cycle phase: none, menstrual, follicular, ovulation or luteal")
	cmd.Flags().StringSliceVar(&conditions, "conditions", nil, "Comma-separated health conditions")

	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or edit the profile with an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("profile init needs a terminal; use 'meridian profile set' instead")
			}
			ctx := context.Background()
			p, err := loadOrNewProfile(ctx, app, app.ProfileID)
			if err != nil {
				return err
			}

			values := newProfileFormValues(p)
			if err := profileForm(values).Run(); err != nil {
				return err
			}
			if err := values.apply(p); err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
