package inspection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/VTVServicesAR/inspection-scheduler/internal/httperr"
)

type Result string

const (
	ResultApproved Result = "approved"
	ResultRejected Result = "rejected"
	ResultRecheck  Result = "recheck"
)

const (
	NumCheckpoints = 8
	MinScore       = 1
	MaxScore       = 10

	// An inspection is approved at a perfect-range total and sent to
	// recheck below this floor or when any single checkpoint is critical.
	ApprovalThreshold = NumCheckpoints * MaxScore // 80
	RecheckThreshold  = 40
	CriticalScore     = 5
)

// ===============================
// Scoring
// ===============================

// ComputeTotal validates the raw checkpoint scores and returns their sum.
// The count is checked before the range so callers get the most actionable
// error first.
func ComputeTotal(scores []int) (int, error) {
	if len(scores) != NumCheckpoints {
		return 0, httperr.ErrValidation("score_count_invalid")
	}

	total := 0
	for _, s := range scores {
		if s < MinScore || s > MaxScore {
			return 0, httperr.ErrValidation("score_out_of_range")
		}
		total += s
	}

	return total, nil
}

// Classify maps validated scores to a result. The total threshold is
// evaluated before the critical-score rule, so a full-score total approves
// even if an entry were below the critical floor (unreachable with scores
// capped at 10, but the branch order is load-bearing).
func Classify(scores []int) (Result, error) {
	total, err := ComputeTotal(scores)
	if err != nil {
		return "", err
	}

	switch {
	case total >= ApprovalThreshold:
		return ResultApproved, nil
	case total < RecheckThreshold || minScore(scores) < CriticalScore:
		return ResultRecheck, nil
	default:
		return ResultRejected, nil
	}
}

// GenerateNotes produces the automatic observation text for a result.
// Scores must have passed ComputeTotal.
func GenerateNotes(scores []int, result Result) string {
	total := 0
	for _, s := range scores {
		total += s
	}

	switch result {
	case ResultRecheck:
		if total < RecheckThreshold {
			return fmt.Sprintf(
				"Insufficient total score (%d/%d). Full vehicle review required.",
				total, ApprovalThreshold,
			)
		}
		if minScore(scores) < CriticalScore {
			return fmt.Sprintf(
				"Critical scores at checkpoints: %s. Specific review required.",
				strings.Join(criticalCheckpoints(scores), ", "),
			)
		}
	case ResultApproved:
		return "Vehicle in optimal condition. All scores within acceptable parameters."
	case ResultRejected:
		return "Vehicle not approved. Performing the necessary repairs is recommended."
	}

	return "No specific observations."
}

// CombineNotes appends caller-supplied free text to the automatic
// observations; empty text leaves them unchanged.
func CombineNotes(auto, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return auto
	}
	return auto + " " + extra
}

// CheckpointLabel is the default label for the n-th checkpoint (1-based).
func CheckpointLabel(position int) string {
	return fmt.Sprintf("Checkpoint %d", position)
}

func minScore(scores []int) int {
	min := scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// criticalCheckpoints returns the 1-based positions scoring below the
// critical floor.
func criticalCheckpoints(scores []int) []string {
	var out []string
	for i, s := range scores {
		if s < CriticalScore {
			out = append(out, strconv.Itoa(i+1))
		}
	}
	return out
}
