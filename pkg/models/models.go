package models

import "time"

// Classification is the role an employee is qualified for.
type Classification string

const (
	ClassificationRCA Classification = "RCA"
	ClassificationLPN Classification = "LPN"
	ClassificationRN  Classification = "RN"
)

// VacancyStatus tracks where a vacancy is in its lifecycle
type VacancyStatus string

const (
	VacancyPosted    VacancyStatus = "posted"
	VacancyAwarded   VacancyStatus = "awarded"
	VacancyCancelled VacancyStatus = "cancelled"
)

// CoverageType describes how much of a vacancy a bid claims
type CoverageType string

const (
	CoverageFull       CoverageType = "full"
	CoverageSomeDays   CoverageType = "some-days"
	CoveragePartialDay CoverageType = "partial-day"
)

// Employee is a roster entry. SeniorityHours takes priority over SeniorityRank
// when both are present.
type Employee struct {
	ID             string         `json:"id" validate:"required"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Classification Classification `json:"classification" validate:"required,oneof=RCA LPN RN"`
	Active         bool           `json:"active"`
	SeniorityRank  *int           `json:"seniorityRank,omitempty" validate:"omitempty,gt=0"`
	SeniorityHours *float64       `json:"seniorityHours,omitempty" validate:"omitempty,gte=0"`
	Status         string         `json:"status,omitempty"`
}

// DayTimes holds the shift window for one working day
type DayTimes struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// VacancyBid is a bid entry stored on a vacancy by the bulk applier
type VacancyBid struct {
	EmployeeID string `json:"employeeId"`
	Note       string `json:"note,omitempty"`
	Rank       int    `json:"rank,omitempty"`
}

// Vacancy is a single-day shift or a multi-day range that needs a worker
type Vacancy struct {
	ID             string              `json:"id" validate:"required"`
	Date           string              `json:"date,omitempty"`
	WorkingDays    []string            `json:"workingDays,omitempty"`
	PerDayTimes    map[string]DayTimes `json:"perDayTimes,omitempty"`
	ShiftStart     string              `json:"shiftStart,omitempty"`
	ShiftEnd       string              `json:"shiftEnd,omitempty"`
	Classification Classification      `json:"classification" validate:"required,oneof=RCA LPN RN"`
	Status         VacancyStatus       `json:"status,omitempty" validate:"omitempty,oneof=posted awarded cancelled"`
	OfferingTier   string              `json:"offeringTier,omitempty"`
	BundleID       string              `json:"bundleId,omitempty"`
	Bids           []VacancyBid        `json:"bids,omitempty"`
}

// Bid is an employee's interest in covering a vacancy
type Bid struct {
	VacancyID            string         `json:"vacancyId"`
	BidderEmployeeID     string         `json:"bidderEmployeeId"`
	BidderStatus         string         `json:"bidderStatus,omitempty"`
	BidderClassification Classification `json:"bidderClassification,omitempty"`
	BidTimestamp         string         `json:"bidTimestamp,omitempty"`
	PlacedAt             string         `json:"placedAt,omitempty"`
	CoverageType         CoverageType   `json:"coverageType"`
	SelectedDays         []string       `json:"selectedDays,omitempty"`
	Notes                string         `json:"notes,omitempty"`
	Note                 string         `json:"note,omitempty"`
	Rank                 *int           `json:"rank,omitempty"`
}

// ResponseWindows holds bid response lead times in minutes
type ResponseWindows struct {
	H4to24 *int `json:"h4to24,omitempty" yaml:"h4to24"`
}

// Settings carries the scheduling knobs the engine reads
type Settings struct {
	ResponseWindows ResponseWindows `json:"responseWindows" yaml:"responseWindows"`
	StatDays        []string        `json:"statDays,omitempty" yaml:"statDays"`
	Location        *time.Location  `json:"-" yaml:"-"`
}

// Recommendation is the outcome of resolving the bids on one vacancy.
// ID is empty when no bidder was eligible.
type Recommendation struct {
	ID  string   `json:"id,omitempty"`
	Why []string `json:"why"`
}

// BulkOptions controls how AddBidsToVacancies applies bids
type BulkOptions struct {
	ApplyToBundles bool   `json:"applyToBundles"`
	Overwrite      bool   `json:"overwrite"`
	SameRank       bool   `json:"sameRank"`
	Note           string `json:"note"`
}

// AuditAction enumerates what an audit entry records
type AuditAction string

const (
	ActionOfferingTierChanged AuditAction = "OFFERING_TIER_CHANGED"
	ActionBundleAttached      AuditAction = "BUNDLE_ATTACHED"
	ActionBidsBulkApplied     AuditAction = "BIDS_BULK_APPLIED"
)

// AuditLogEntry is one record in the append-only audit log
type AuditLogEntry struct {
	ID         string         `json:"id"`
	Ts         string         `json:"ts"`
	Actor      string         `json:"actor"`
	Action     AuditAction    `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId"`
	Details    map[string]any `json:"details,omitempty"`
}
