package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

const YearColumn = "Year"

// Indicator is a yearly series the dashboard knows how to chart.
type Indicator struct {
	Column string `json:"column"`
	Label  string `json:"label"`
	Title  string `json:"title"`
}

var Indicators = []Indicator{
	{Column: "OPR_avg", Label: "OPR (%)", Title: "Trend of OPR vs Year"},
	{Column: "EPF", Label: "EPF (%)", Title: "Trend of EPF vs Year"},
	{Column: "PriceGrowth", Label: "Price Growth (%)", Title: "Trend of Price Growth vs Year"},
	{Column: "RentYield", Label: "Rental Yield (%)", Title: "Trend of Rental Yield vs Year"},
}

func LookupIndicator(column string) (Indicator, bool) {
	for _, ind := range Indicators {
		if ind.Column == column {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Schema declares the columns a caller depends on.
type Schema struct {
	Required []string
}

var DefaultSchema = Schema{Required: []string{YearColumn}}

var ErrDatasetNotFound = errors.New("dataset file not found")

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field '%s'", e.Field)
}

// Value is a float that encodes NaN and infinities as JSON null.
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (v Value) String() string {
	f := float64(v)
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type ColumnSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Mean   Value  `json:"mean"`
	Std    Value  `json:"std"`
	Min    Value  `json:"min"`
	Q25    Value  `json:"25%"`
	Q50    Value  `json:"50%"`
	Q75    Value  `json:"75%"`
	Max    Value  `json:"max"`
}

type CorrelationMatrix struct {
	Columns []string  `json:"columns"`
	Values  [][]Value `json:"values"`
}

type Point struct {
	Year  int   `json:"year"`
	Value Value `json:"value"`
}

type CleanReport struct {
	Initial   int `json:"initial"`
	Remaining int `json:"remaining"`
	Dropped   int `json:"dropped"`
}
