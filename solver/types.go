package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// StandardStocks lists the displayed concentrations of the commercially
// available premixed gels.
var StandardStocks = []float64{4.5, 5.0, 6.0, 7.5, 8.0, 10.0, 12.5, 15.0}

// IsStandardStock reports whether c is one of StandardStocks.
func IsStandardStock(c float64) bool {
	for _, s := range StandardStocks {
		if s == c {
			return true
		}
	}
	return false
}

// Stock is a displayed stock gel concentration in percent.
type Stock float64

// Effective returns the concentration used in mass balance. The label on a
// stock bottle is half its true percentage.
func (s Stock) Effective() float64 { return 2 * float64(s) }

func effective(stocks []float64) []float64 {
	out := make([]float64, len(stocks))
	for i, s := range stocks {
		out[i] = Stock(s).Effective()
	}
	return out
}

// Request is one calculation: which stocks to use, the concentration to hit
// and the total volume to prepare.
type Request struct {
	Stocks              []float64 `json:"stocks" validate:"min=1,unique,dive,gt=0"`
	TargetConcentration float64   `json:"target" validate:"gt=0"`
	TotalVolume         float64   `json:"volume" validate:"gt=0"`
}

var validate = validator.New()

// Validate checks the request before any search runs. All failures wrap
// ErrInvalidInput.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := verrs[0]
	switch {
	case fe.StructField() == "Stocks" && fe.Tag() == "min":
		return fmt.Errorf("%w: at least one stock must be selected", ErrInvalidInput)
	case fe.StructField() == "Stocks" && fe.Tag() == "unique":
		return fmt.Errorf("%w: duplicate stock concentration", ErrInvalidInput)
	case fe.Tag() == "gt":
		return fmt.Errorf("%w: %s must be greater than 0, got %v", ErrInvalidInput, fieldName(fe), fe.Value())
	}
	return fmt.Errorf("%w: %s failed %q", ErrInvalidInput, fieldName(fe), fe.Tag())
}

func fieldName(fe validator.FieldError) string {
	switch fe.StructField() {
	case "TargetConcentration":
		return "target concentration"
	case "TotalVolume":
		return "total volume"
	}
	// dive errors report the element, e.g. Stocks[1]
	return fe.Field()
}

// Source identifies which phase proposed a mix.
type Source int

const (
	SourceExact Source = iota
	SourceGrid
	SourceDominant
	SourceBalanced
)

func (s Source) String() string {
	switch s {
	case SourceExact:
		return "exact"
	case SourceGrid:
		return "grid"
	case SourceDominant:
		return "dominant"
	case SourceBalanced:
		return "balanced"
	}
	return "unknown"
}

// MarshalText lets Source appear by name in JSON output.
func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a Source from its String form.
func (s *Source) UnmarshalText(text []byte) error {
	for _, c := range []Source{SourceExact, SourceGrid, SourceDominant, SourceBalanced} {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown mix source %q", text)
}

// Mix is one candidate recipe. Volumes are parallel to Request.Stocks.
type Mix struct {
	Volumes       []float64 `json:"volumes"`
	Diluent       float64   `json:"diluent"`
	Concentration float64   `json:"concentration"`
	Score         int       `json:"score"`
	Source        Source    `json:"source"`

	// Integer and DiluentPercent carry IsInteger and DiluentShare into JSON.
	Integer        bool    `json:"integer"`
	DiluentPercent float64 `json:"diluentPercent"`
}

// IsInteger reports whether every stock volume is a whole number of ml
// within the integer tolerance.
func (m Mix) IsInteger() bool {
	for _, v := range m.Volumes {
		if !nearInteger(v) {
			return false
		}
	}
	return true
}

// DiluentShare is the diluent volume as a fraction of total.
func (m Mix) DiluentShare(total float64) float64 {
	if total <= 0 {
		return 0
	}
	return m.Diluent / total
}

const integerTolerance = 0.001

func nearInteger(v float64) bool {
	return math.Abs(v-math.Round(v)) < integerTolerance
}
