package payroll

import (
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	taxRate  = decimal.RequireFromString("0.10")
	fundRate = decimal.RequireFromString("0.06")
)

// ComputeNetPay applies flat tax, fund withholding for members and the late
// deduction. Net pay is not floored at zero.
func ComputeNetPay(grossTotal decimal.Decimal, fundMember bool, lateDeduction decimal.Decimal) (payroll.Deductions, decimal.Decimal) {
	d := payroll.Deductions{
		Tax:   grossTotal.Mul(taxRate).Round(2),
		Fund:  decimal.Zero,
		Other: lateDeduction,
	}
	if fundMember {
		d.Fund = grossTotal.Mul(fundRate).Round(2)
	}
	d.Total = d.Tax.Add(d.Fund).Add(d.Other).Round(2)

	return d, grossTotal.Sub(d.Total)
}
