package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	ShiftID          *string
	EmployeeCode     string
	FullName         string
	EmploymentStatus EmploymentStatus
	// Rate is nil when the employee has no employment record.
	Rate       *decimal.Decimal
	RateType   RateType
	FundMember bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RateInfo returns the compensation rate, or false when no employment record exists.
func (e Employee) RateInfo() (RateInfo, bool) {
	if e.Rate == nil {
		return RateInfo{}, false
	}
	return RateInfo{Rate: *e.Rate, Type: e.RateType}, true
}

type RateInfo struct {
	Rate decimal.Decimal
	Type RateType
}

type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypeMonthly RateType = "monthly"
	RateTypeAnnual  RateType = "annual"
)

var RateTypeValues = []string{
	string(RateTypeHourly),
	string(RateTypeDaily),
	string(RateTypeMonthly),
	string(RateTypeAnnual),
}

func (r RateType) IsValid() bool {
	switch r {
	case RateTypeHourly, RateTypeDaily, RateTypeMonthly, RateTypeAnnual:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
