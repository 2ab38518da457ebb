package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/validation"
)

// Plan identifies the account billing plan.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanMetered Plan = "metered"
	PlanPaid    Plan = "paid"
)

// Stats is a read-only account usage snapshot over a time range.
type Stats struct {
	AccountEmail          string    `json:"account_email" validate:"required,email"`
	Plan                  Plan      `json:"plan" validate:"required,oneof=free metered paid"`
	MonthlyRequestLimit   string    `json:"monthly_request_limit"`
	RequestCount          int       `json:"request_count" validate:"gte=0"`
	MinutesSummarized     int       `json:"minutes_summarized" validate:"gte=0"`
	TranscriptsSummarized int       `json:"transcripts_summarized" validate:"gte=0"`
	MeteredCharge         string    `json:"metered_charge"`
	MinCreated            time.Time `json:"min_created"`
	MaxCreated            time.Time `json:"max_created"`
	Tags                  []string  `json:"tags,omitempty"`
}

// Validate checks the snapshot's documented invariants: valid email and
// plan, non-negative counters, a $X.XX charge, and an ordered time range.
func (s *Stats) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := validateCharge(s.MeteredCharge); err != nil {
		return err
	}
	if !s.MinCreated.IsZero() && !s.MaxCreated.IsZero() && s.MinCreated.After(s.MaxCreated) {
		return errors.InvalidInput("min_created",
			fmt.Sprintf("min_created %s is after max_created %s", s.MinCreated.Format(time.RFC3339), s.MaxCreated.Format(time.RFC3339)))
	}
	return nil
}

// validateCharge checks the $X or $X.XX money format.
func validateCharge(charge string) error {
	if charge == "" {
		return nil
	}
	if !strings.HasPrefix(charge, "$") {
		return errors.InvalidInput("metered_charge", fmt.Sprintf("%q must start with $", charge))
	}
	amount := strings.Replace(charge[1:], ".", "", 1)
	if amount == "" {
		return errors.InvalidInput("metered_charge", fmt.Sprintf("%q is not a dollar amount", charge))
	}
	if _, err := strconv.ParseUint(amount, 10, 64); err != nil {
		return errors.InvalidInput("metered_charge", fmt.Sprintf("%q is not a dollar amount", charge))
	}
	return nil
}
