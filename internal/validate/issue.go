// Package validate checks generated plans against hard safety caps and soft
// target ranges, producing a typed issue list the auto-fix engine and the
// regeneration feedback builder consume.
package validate

// IssueType separates blocking errors from advisory warnings. Acceptance is
// strictly "zero errors"; warnings never block.
type IssueType string

const (
	TypeError   IssueType = "error"
	TypeWarning IssueType = "warning"
)

// IssueCategory tags an issue for fixer dispatch and feedback guidance. The
// set is closed; fixers key off these values.
type IssueCategory string

const (
	// Hard safety violations — always errors, never silenced.
	CatRunningProgression      IssueCategory = "safety_running_progression"
	CatSingleSessionDistance   IssueCategory = "safety_single_session_distance"
	CatHighIntensityCount      IssueCategory = "safety_high_intensity_count"
	CatConsecutiveHardDays     IssueCategory = "safety_consecutive_hard_days"
	CatStationVolume           IssueCategory = "safety_station_volume"
	CatRestDays                IssueCategory = "safety_rest_days"
	CatConsecutiveTrainingDays IssueCategory = "safety_consecutive_training_days"
	CatEasyDays                IssueCategory = "safety_easy_days"

	// Structural checks.
	CatSessionDuration IssueCategory = "session_duration"
	CatTrainingDays    IssueCategory = "training_days"

	// Soft targets and coverage.
	CatRunningVolumeLow     IssueCategory = "running_volume_low"
	CatRunningVolumeHigh    IssueCategory = "running_volume_high"
	CatStationCoverage      IssueCategory = "station_coverage"
	CatWeakStationFrequency IssueCategory = "weak_station_frequency"
	CatSecondaryVolumeLow   IssueCategory = "secondary_volume_low"
	CatMissingWeight        IssueCategory = "missing_weight"
	CatMissingPace          IssueCategory = "missing_pace"

	// Orchestration-level failures.
	CatParseError IssueCategory = "parse_error"
)

// Issue is one validation finding. Immutable once created; the details map
// carries the numbers (actual value, cap, level) that drive user messaging
// and the auto-fix routines.
type Issue struct {
	Type        IssueType      `json:"type"`
	Category    IssueCategory  `json:"category"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
	AutoFixable bool           `json:"auto_fixable"`
}

// errorIssue builds a blocking issue.
func errorIssue(cat IssueCategory, msg string, fixable bool, details map[string]any) Issue {
	return Issue{Type: TypeError, Category: cat, Message: msg, Details: details, AutoFixable: fixable}
}

// warningIssue builds an advisory issue.
func warningIssue(cat IssueCategory, msg string, fixable bool, details map[string]any) Issue {
	return Issue{Type: TypeWarning, Category: cat, Message: msg, Details: details, AutoFixable: fixable}
}

// CountByType returns (errors, warnings) for an issue list.
func CountByType(issues []Issue) (errors, warnings int) {
	for _, is := range issues {
		if is.Type == TypeError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// HasFixable reports whether any issue can be auto-repaired.
func HasFixable(issues []Issue) bool {
	for _, is := range issues {
		if is.AutoFixable {
			return true
		}
	}
	return false
}
