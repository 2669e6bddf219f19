package domain

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type GoalType string

const (
	GoalFatLoss     GoalType = "fat_loss"
	GoalMaintenance GoalType = "maintenance"
	GoalMuscleGain  GoalType = "muscle_gain"
)

type DietPreference string

const (
	DietOmnivore            DietPreference = "omnivore"
	DietVegetarian          DietPreference = "vegetarian"
	DietVegan               DietPreference = "vegan"
	DietKeto                DietPreference = "keto"
	DietIntermittentFasting DietPreference = "intermittent_fasting"
)

type JobType string

const (
	JobDesk    JobType = "desk"
	JobActive  JobType = "active"
	JobShift   JobType = "shift"
	JobStudent JobType = "student"
)

type Condition string

const (
	ConditionDiabetes       Condition = "diabetes"
	ConditionHypertension   Condition = "hypertension"
	ConditionPCOS           Condition = "pcos"
	ConditionThyroid        Condition = "thyroid"
	ConditionHeartCondition Condition = "heart_condition"
)

type CyclePhase string

const (
	CycleNone       CyclePhase = "none"
	CycleMenstrual  CyclePhase = "menstrual"
	CycleFollicular CyclePhase = "follicular"
	CycleOvulation  CyclePhase = "ovulation"
	CycleLuteal     CyclePhase = "luteal"
)

// UserMode is the coarse life context a user declares for the day.
type UserMode string

const (
	ModeNormal   UserMode = "normal"
	ModeTravel   UserMode = "travel"
	ModeSick     UserMode = "sick"
	ModeExam     UserMode = "exam"
	ModeFestival UserMode = "festival"
)

type SkipReason string

const (
	SkipTired       SkipReason = "tired"
	SkipBusy        SkipReason = "busy"
	SkipSick        SkipReason = "sick"
	SkipInjured     SkipReason = "injured"
	SkipTravel      SkipReason = "travel"
	SkipUnmotivated SkipReason = "unmotivated"
	SkipOther       SkipReason = "other"
)

type MealComplexity string

const (
	MealSimple    MealComplexity = "simple"
	MealStandard  MealComplexity = "standard"
	MealElaborate MealComplexity = "elaborate"
)

type RoutineLevel string

const (
	RoutineMinimal RoutineLevel = "minimal"
	RoutineReduced RoutineLevel = "reduced"
	RoutineFull    RoutineLevel = "full"
)

// ValidActivityLevels is the canonical set of accepted activity level strings.
var ValidActivityLevels = map[ActivityLevel]bool{
	ActivitySedentary: true, ActivityLight: true, ActivityModerate: true,
	ActivityActive: true, ActivityVeryActive: true,
}

var ValidGoals = map[GoalType]bool{
	GoalFatLoss: true, GoalMaintenance: true, GoalMuscleGain: true,
}

var ValidDiets = map[DietPreference]bool{
	DietOmnivore: true, DietVegetarian: true, DietVegan: true,
	DietKeto: true, DietIntermittentFasting: true,
}

var ValidJobs = map[JobType]bool{
	JobDesk: true, JobActive: true, JobShift: true, JobStudent: true,
}

var ValidConditions = map[Condition]bool{
	ConditionDiabetes: true, ConditionHypertension: true, ConditionPCOS: true,
	ConditionThyroid: true, ConditionHeartCondition: true,
}

var ValidCyclePhases = map[CyclePhase]bool{
	CycleNone: true, CycleMenstrual: true, CycleFollicular: true,
	CycleOvulation: true, CycleLuteal: true,
}

var ValidModes = map[UserMode]bool{
	ModeNormal: true, ModeTravel: true, ModeSick: true,
	ModeExam: true, ModeFestival: true,
}

// SkipReasonInfo is static metadata describing a workout skip reason.
type SkipReasonInfo struct {
	Label string
	// Recovery marks reasons that indicate the body needed the day off,
	// as opposed to scheduling or motivation gaps.
	Recovery bool
}

// SkipReasons maps each skip reason to its metadata. Read-only.
var SkipReasons = map[SkipReason]SkipReasonInfo{
	SkipTired:       {Label: "Too tired", Recovery: true},
	SkipBusy:        {Label: "No time", Recovery: false},
	SkipSick:        {Label: "Feeling sick", Recovery: true},
	SkipInjured:     {Label: "Injury", Recovery: true},
	SkipTravel:      {Label: "Travelling", Recovery: false},
	SkipUnmotivated: {Label: "Low motivation", Recovery: false},
	SkipOther:       {Label: "Other", Recovery: false},
}
