package finance

import "math"

// MonthlyMortgagePayment is the level monthly instalment that repays principal
// over years at annualRate, compounded monthly.
func MonthlyMortgagePayment(principal, annualRate float64, years int) float64 {
	r := annualRate / 12.0
	n := float64(years * 12)
	if annualRate == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

// FVLumpSum compounds pv annually for years.
func FVLumpSum(pv, annualRate float64, years int) float64 {
	return pv * math.Pow(1+annualRate, float64(years))
}

// FVMonthlyAnnuity is the future value of pmt paid at the end of every month.
func FVMonthlyAnnuity(pmt, annualRate float64, years int) float64 {
	r := annualRate / 12.0
	n := float64(years * 12)
	if annualRate == 0 {
		return pmt * n
	}
	return pmt * ((math.Pow(1+r, n) - 1) / r)
}
