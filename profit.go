package stocks

// Brazilian capital-gains rule for equities: months whose total sale
// proceeds exceed R$20000 with a positive net profit are taxed at 15%.
// Both comparisons are strict.
var (
	taxExemptProceeds = M(20000)
	taxRate           = Q(0.15)
)

// MonthSummary accumulates the realized profit and sale proceeds of one
// calendar month across all securities.
type MonthSummary struct {
	Profit   Money
	Proceeds Money
}

// Tax returns the capital-gains withholding due for the month.
func (s MonthSummary) Tax() Money {
	if s.Proceeds.GreaterThan(taxExemptProceeds) && s.Profit.IsPositive() {
		return s.Profit.Mul(taxRate)
	}
	return M(0)
}

// add sums another summary element-wise.
func (s MonthSummary) add(o MonthSummary) MonthSummary {
	return MonthSummary{
		Profit:   s.Profit.Add(o.Profit),
		Proceeds: s.Proceeds.Add(o.Proceeds),
	}
}
