package domain

type RiskTier string

const (
	RiskProven       RiskTier = "proven"
	RiskExperimental RiskTier = "experimental"
	RiskDependant    RiskTier = "dependant"
	// RiskUnestimated marks items whose size is missing or unparseable.
	// They are counted separately and never contribute to numeric totals.
	RiskUnestimated RiskTier = "unestimated"
)

type PriorityTier string

const (
	PriorityMustHave   PriorityTier = "must_have"
	PriorityShouldHave PriorityTier = "should_have"
	PriorityCouldHave  PriorityTier = "could_have"
	PriorityWontHave   PriorityTier = "wont_have"
)

// ScheduleState is the terminal state of a scheduling run.
type ScheduleState string

const (
	// ScheduleComplete means the backlog was fully allocated.
	ScheduleComplete ScheduleState = "complete"
	// ScheduleCapacityExhausted means the sprint safety cap was reached
	// with backlog remaining. The team cannot realistically clear the
	// backlog within the configured horizon.
	ScheduleCapacityExhausted ScheduleState = "capacity_exhausted"
)
