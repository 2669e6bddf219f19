package contract

import (
	"encoding/json"

	"github.com/alexanderramin/meridian/internal/advisor"
	"github.com/alexanderramin/meridian/internal/domain"
)

// PlanJSON is the serialized plan. Field names are part of the output
// contract shared with the UI and the HTTP API.
type PlanJSON struct {
	Date         string            `json:"date"`
	Mode         string            `json:"mode"`
	Adjustments  map[string]any    `json:"adjustments"`
	Explanations []ExplanationJSON `json:"explanations"`
	Timeline     []TimelineJSON    `json:"timeline"`
	LifeScore    int               `json:"lifeScore"`
	Warnings     []string          `json:"warnings"`
}

type ExplanationJSON struct {
	Reason   string `json:"reason"`
	RuleID   string `json:"ruleId"`
	Action   string `json:"action"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

type TimelineJSON struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Domain   string `json:"domain"`
}

// FromPlan maps a resolved plan to its output form. Empty lists serialize
// as [] rather than null.
func FromPlan(p advisor.Plan) PlanJSON {
	out := PlanJSON{
		Date:         p.Date.Format(domain.DateLayout),
		Mode:         string(p.Mode),
		Adjustments:  p.Adjustments.AsMap(),
		Explanations: make([]ExplanationJSON, 0, len(p.Explanations)),
		Timeline:     make([]TimelineJSON, 0, len(p.Timeline)),
		LifeScore:    p.LifeScore,
		Warnings:     make([]string, 0, len(p.Warnings)),
	}
	for _, e := range p.Explanations {
		out.Explanations = append(out.Explanations, ExplanationJSON{
			Reason:   e.Reason,
			RuleID:   e.RuleID,
			Action:   e.Action,
			Message:  e.Message,
			Priority: int(e.Priority),
		})
	}
	for _, t := range p.Timeline {
		out.Timeline = append(out.Timeline, TimelineJSON{
			Time:     t.Time,
			Activity: t.Activity,
			Domain:   string(t.Domain),
		})
	}
	out.Warnings = append(out.Warnings, p.Warnings...)
	return out
}

// MarshalPlan renders p as JSON. Map keys are emitted sorted, so equal
// plans produce identical bytes.
func MarshalPlan(p advisor.Plan) ([]byte, error) {
	return json.Marshal(FromPlan(p))
}
