// Package advisor resolves the day's signals into one plan: mode defaults,
// a single pass over the prioritized rule table, a final conflict pass, the
// explanation trail, a timeline and the life score.
package advisor

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/metrics"
)

type Explanation struct {
	Reason   string
	RuleID   string
	Action   string
	Message  string
	Priority Priority
}

type Plan struct {
	Date         time.Time
	Mode         domain.UserMode
	Adjustments  Adjustments
	Explanations []Explanation
	Timeline     []TimelineEntry
	LifeScore    int
	Warnings     []string
}

// Advisor evaluates a rule table. The zero value is not usable; call New.
type Advisor struct {
	rules   []Rule
	scorers Scorers
	logger  *slog.Logger
}

type Option func(*Advisor)

// WithScorers sets the per-domain scorers blended into the life score.
func WithScorers(s Scorers) Option {
	return func(a *Advisor) { a.scorers = s }
}

// WithLogger sets the logger for skipped-rule events.
func WithLogger(l *slog.Logger) Option {
	return func(a *Advisor) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithRules replaces the rule table. The table is sorted by tier, keeping
// declaration order for ties; an empty table panics.
func WithRules(r []Rule) Option {
	return func(a *Advisor) { a.rules = sortRules(r) }
}

func New(opts ...Option) *Advisor {
	a := &Advisor{
		rules:   rules,
		scorers: DefaultScorers(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// GeneratePlan resolves pctx with the default rule table.
func GeneratePlan(pctx PlanContext, scorers Scorers) Plan {
	return New(WithScorers(scorers)).Generate(pctx)
}

// Generate computes the plan for pctx. The result depends only on pctx.
func (a *Advisor) Generate(pctx PlanContext) Plan {
	ctx := pctx.normalized()

	mode, adj, modeExpl, known := seedMode(ctx.Mode)
	plan := Plan{Date: ctx.Date, Mode: mode}
	if !known {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf("unknown mode %q, using normal", ctx.Mode))
	}
	if modeExpl != nil {
		plan.Explanations = append(plan.Explanations, *modeExpl)
	}
	adj.ProteinTargetG = ctx.Baseline.ProteinTargetG

	for _, r := range a.rules {
		next, expl, fired, err := applyRule(r, &ctx, adj)
		if err != nil {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf("rule %s skipped: %v", r.ID, err))
			a.logger.Warn("rule_skipped",
				"rule_id", r.ID,
				"date", ctx.Date.Format(domain.DateLayout),
				"error", err.Error(),
			)
			continue
		}
		if fired {
			adj = next
			plan.Explanations = append(plan.Explanations, expl)
		}
	}

	plan.Adjustments = resolveConflicts(adj, ctx.Profile, ctx.Baseline.CalorieTarget)

	sort.SliceStable(plan.Explanations, func(i, j int) bool {
		return plan.Explanations[i].Priority < plan.Explanations[j].Priority
	})
	plan.Timeline = BuildTimeline(plan.Adjustments)
	plan.LifeScore = LifeScore(a.scorers, ctx.Health, ctx.Looks, ctx.Routine)
	return plan
}

// applyRule evaluates one rule. A panicking predicate, effect or message is
// reported as an error and leaves adj untouched.
func applyRule(r Rule, ctx *PlanContext, adj Adjustments) (next Adjustments, expl Explanation, fired bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			next, expl, fired, err = adj, Explanation{}, false, fmt.Errorf("panic: %v", rec)
		}
	}()
	ok, err := r.Predicate(ctx)
	if err != nil || !ok {
		return adj, Explanation{}, false, err
	}
	next = r.Effect(adj, ctx)
	expl = Explanation{
		Reason:   r.Reason,
		RuleID:   r.ID,
		Action:   r.Action,
		Message:  r.Explain(ctx),
		Priority: r.Priority,
	}
	return next, expl, true, nil
}

// resolveConflicts is the final pass and always runs last: a rest day zeroes
// intensity and disables overload, intensity stays within [0, 1] and the
// calorie delta stays within one safe step and above the intake floor.
func resolveConflicts(a Adjustments, p domain.Profile, calorieTarget int) Adjustments {
	if a.RestDay {
		a.WorkoutIntensity = 0
		a.ProgressiveOverload = false
	}
	if math.IsNaN(a.WorkoutIntensity) || a.WorkoutIntensity < 0 {
		a.WorkoutIntensity = 0
	}
	if a.WorkoutIntensity > 1 {
		a.WorkoutIntensity = 1
	}
	a.WorkoutIntensity = math.Round(a.WorkoutIntensity*1000) / 1000
	if a.WorkoutIntensity == 0 {
		a.ProgressiveOverload = false
	}

	if a.CalorieDelta > metrics.MaxStepKcal {
		a.CalorieDelta = metrics.MaxStepKcal
	}
	if a.CalorieDelta < -metrics.MaxStepKcal {
		a.CalorieDelta = -metrics.MaxStepKcal
	}
	if calorieTarget > 0 {
		if floor := metrics.MinimumCalories(p.Sex); calorieTarget+a.CalorieDelta < floor {
			a.CalorieDelta = floor - calorieTarget
		}
	}
	return a
}
