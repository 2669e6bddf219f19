package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/alexanderramin/meridian/internal/cli/formatter"
	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// meridianHuhTheme returns a huh theme using the formatter palette.
func meridianHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileFormValues holds the form's string-typed inputs until they are
// parsed back into a profile.
type profileFormValues struct {
	sex        domain.Sex
	age        string
	height     string
	weight     string
	activity   domain.ActivityLevel
	goal       domain.GoalType
	delta      string
	diet       domain.DietPreference
	job        domain.JobType
	cycle      domain.CyclePhase
	conditions []domain.Condition
}

func newProfileFormValues(p *domain.Profile) *profileFormValues {
	v := &profileFormValues{
		sex:        orDefault(p.Sex, domain.SexMale),
		activity:   orDefault(p.ActivityLevel, domain.ActivityModerate),
		goal:       orDefault(p.Goal, domain.GoalMaintenance),
		diet:       orDefault(p.Diet, domain.DietOmnivore),
		job:        orDefault(p.Job, domain.JobDesk),
		cycle:      p.EffectiveCyclePhase(),
		conditions: slices.Clone(p.Conditions),
	}
	if p.Age > 0 {
		v.age = strconv.Itoa(p.Age)
	}
	if p.HeightCM > 0 {
		v.height = strconv.FormatFloat(p.HeightCM, 'f', -1, 64)
	}
	if p.WeightKG > 0 {
		v.weight = strconv.FormatFloat(p.WeightKG, 'f', -1, 64)
	}
	v.delta = strconv.Itoa(p.TargetDailyDeltaKcal)
	return v
}

// apply copies parsed values onto p. Inputs were validated by the form, so
// an error here means the form was bypassed.
func (v *profileFormValues) apply(p *domain.Profile) error {
	age, err := strconv.Atoi(v.age)
	if err != nil {
		return fmt.Errorf("age: %w", err)
	}
	height, err := strconv.ParseFloat(v.height, 64)
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	weight, err := strconv.ParseFloat(v.weight, 64)
	if err != nil {
		return fmt.Errorf("weight: %w", err)
	}
	delta, err := strconv.Atoi(v.delta)
	if err != nil {
		return fmt.Errorf("daily delta: %w", err)
	}

	p.Sex = v.sex
	p.Age = age
	p.HeightCM = height
	p.WeightKG = weight
	p.ActivityLevel = v.activity
	p.Goal = v.goal
	p.TargetDailyDeltaKcal = delta
	p.Diet = v.diet
	p.Job = v.job
	p.CyclePhase = v.cycle
	p.Conditions = v.conditions
	return nil
}

func profileForm(v *profileFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Sex]().Title("Sex").
				Options(huh.NewOption("Male", domain.SexMale), huh.NewOption("Female", domain.SexFemale)).
				Value(&v.sex),
			huh.NewInput().Title("Age").Placeholder("30").Value(&v.age).Validate(validateIntRange(13, 120)),
			huh.NewInput().Title("Height (cm)").Placeholder("175").Value(&v.height).Validate(validateFloatRange(100, 250)),
			huh.NewInput().Title("Weight (kg)").Placeholder("75").Value(&v.weight).Validate(validateFloatRange(30, 350)),
		),
		huh.NewGroup(
			huh.NewSelect[domain.ActivityLevel]().Title("Activity level").
				Options(
					huh.NewOption("Sedentary", domain.ActivitySedentary),
					huh.NewOption("Light", domain.ActivityLight),
					huh.NewOption("Moderate", domain.ActivityModerate),
					huh.NewOption("Active", domain.ActivityActive),
					huh.NewOption("Very active", domain.ActivityVeryActive),
				).
				Value(&v.activity),
			huh.NewSelect[domain.GoalType]().Title("Goal").
				Options(
					huh.NewOption("Fat loss", domain.GoalFatLoss),
					huh.NewOption("Maintenance", domain.GoalMaintenance),
					huh.NewOption("Muscle gain", domain.GoalMuscleGain),
				).
				Value(&v.goal),
			huh.NewInput().Title("Daily energy balance (kcal)").
				Description("Negative for a deficit, e.g. -500").
				Value(&v.delta).
				Validate(validateIntRange(-1500, 1000)),
		),
		huh.NewGroup(
			huh.NewSelect[domain.DietPreference]().Title("Diet").
				Options(
					huh.NewOption("Omnivore", domain.DietOmnivore),
					huh.NewOption("Vegetarian", domain.DietVegetarian),
					huh.NewOption("Vegan", domain.DietVegan),
					huh.NewOption("Keto", domain.DietKeto),
					huh.NewOption("Intermittent fasting", domain.DietIntermittentFasting),
				).
				Value(&v.diet),
			huh.NewSelect[domain.JobType]().Title("Job").
				Options(
					huh.NewOption("Desk", domain.JobDesk),
					huh.NewOption("Active", domain.JobActive),
					huh.NewOption("Shift", domain.JobShift),
					huh.NewOption("Student", domain.JobStudent),
				).
				Value(&v.job),
			huh.NewMultiSelect[domain.Condition]().Title("Health conditions").
				Options(
					huh.NewOption("Diabetes", domain.ConditionDiabetes),
					huh.NewOption("Hypertension", domain.ConditionHypertension),
					huh.NewOption("PCOS", domain.ConditionPCOS),
					huh.NewOption("Thyroid", domain.ConditionThyroid),
					huh.NewOption("Heart condition", domain.ConditionHeartCondition),
				).
				Value(&v.conditions),
			huh.NewSelect[domain.CyclePhase]().Title("Cycle phase").
				Options(
					huh.NewOption("Not tracked", domain.CycleNone),
					huh.NewOption("Menstrual", domain.CycleMenstrual),
					huh.NewOption("Follicular", domain.CycleFollicular),
					huh.NewOption("Ovulation", domain.CycleOvulation),
					huh.NewOption("Luteal", domain.CycleLuteal),
				).
				Value(&v.cycle),
		),
	).WithTheme(meridianHuhTheme()).WithShowHelp(false)
}

func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a whole number between %d and %d", lo, hi)
		}
		return nil
	}
}

func validateFloatRange(lo, hi float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number between %g and %g", lo, hi)
		}
		return nil
	}
}

func orDefault[T ~string](v, fallback T) T {
	if v == "" {
		return fallback
	}
	return v
}
