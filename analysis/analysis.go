package analysis

import (
	"errors"
	"time"

	models "github.com/ledosportsacademy/club-manager-go/models"
)

// WeeklyFeeUnit is the amount attributed per member with paid/pending
// weekly status.
const WeeklyFeeUnit = 20

// Filter types accepted by the analysis endpoint.
const (
	TypeAll       = "all"
	TypeFees      = "fees"
	TypeDonations = "donations"
	TypeExpenses  = "expenses"
)

var (
	ErrInvalidDate  = errors.New("invalid date, use RFC3339 or YYYY-MM-DD")
	ErrInvalidRange = errors.New("endDate must not be before startDate")
	ErrPartialRange = errors.New("startDate and endDate must be provided together")
	ErrInvalidType  = errors.New("type must be one of all, fees, donations, expenses")
)

// Summary is the five-field financial aggregate.
type Summary struct {
	WeeklyFeeCollection float64 `json:"weeklyFeeCollection"`
	PendingFees         float64 `json:"pendingFees"`
	DonationTotal       float64 `json:"donationTotal"`
	ExpenseTotal        float64 `json:"expenseTotal"`
	AvailableAmount     float64 `json:"availableAmount"`
}

// Range is an inclusive [Start, End] date window. The zero value means
// no filtering.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the range. A zero range
// contains everything.
func (r Range) Contains(t time.Time) bool {
	if r.IsZero() {
		return true
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseRange validates and parses the startDate/endDate query pair.
// Both must be given or both omitted; a malformed or inverted range is
// rejected rather than treated as empty.
func ParseRange(startDate, endDate string) (Range, error) {
	if startDate == "" && endDate == "" {
		return Range{}, nil
	}
	if startDate == "" || endDate == "" {
		return Range{}, ErrPartialRange
	}

	start, err := parseDate(startDate)
	if err != nil {
		return Range{}, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return Range{}, err
	}
	if end.Before(start) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ValidType reports whether typ is a recognized category filter. An
// empty value defaults to "all".
func ValidType(typ string) bool {
	switch typ {
	case "", TypeAll, TypeFees, TypeDonations, TypeExpenses:
		return true
	}
	return false
}

// Compute derives the financial summary from the given record sets.
// Donations and expenses are expected to be pre-filtered to the
// requested date range; members are deliberately not date-filtered so
// the fee figures keep matching the numbers the dashboard has always
// shown. AvailableAmount is always computed from the unsuppressed
// totals, whatever typ asks to hide.
func Compute(members []models.Member, donations []models.Donation, expenses []models.Expense, typ string) Summary {
	var paid, pending int
	for _, m := range members {
		if m.HasPaidWeeklyFee {
			paid++
		} else {
			pending++
		}
	}

	weeklyFeeCollection := float64(paid * WeeklyFeeUnit)
	pendingFees := float64(pending * WeeklyFeeUnit)

	var donationTotal float64
	for _, d := range donations {
		if d.Amount != nil {
			donationTotal += *d.Amount
		}
	}

	var expenseTotal float64
	for _, e := range expenses {
		expenseTotal += e.Amount
	}

	s := Summary{
		WeeklyFeeCollection: weeklyFeeCollection,
		PendingFees:         pendingFees,
		DonationTotal:       donationTotal,
		ExpenseTotal:        expenseTotal,
		AvailableAmount:     weeklyFeeCollection + donationTotal - expenseTotal,
	}

	switch typ {
	case TypeFees:
		s.DonationTotal = 0
		s.ExpenseTotal = 0
	case TypeDonations:
		s.WeeklyFeeCollection = 0
		s.PendingFees = 0
		s.ExpenseTotal = 0
	case TypeExpenses:
		s.WeeklyFeeCollection = 0
		s.PendingFees = 0
		s.DonationTotal = 0
	}

	return s
}
