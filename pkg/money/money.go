package money

import (
	"encoding/json"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cents is a monetary amount in integer cents. All fee arithmetic in the
// application happens in cents so totals stay exact; conversion to decimal
// happens only at JSON/display boundaries.
type Cents int64

// FromDecimal converts a decimal currency amount (e.g. 19.58) to cents,
// rounding half away from zero.
func FromDecimal(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Decimal returns the amount as a decimal currency value.
func (c Cents) Decimal() float64 {
	return float64(c) / 100
}

// MarshalJSON renders the amount as a decimal number, matching what API
// consumers expect (19.58, not 1958).
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Decimal())
}

// UnmarshalJSON accepts a decimal number and stores it as cents.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = FromDecimal(v)
	return nil
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders the amount with a currency symbol, locale-aware digit
// grouping and two decimal places, e.g. "$1,219.58".
func (c Cents) Format() string {
	return printer.Sprintf("$%.2f", c.Decimal())
}

// RoundTax computes a tax amount in cents from a subtotal and a decimal tax
// rate (e.g. 0.0875), rounding half away from zero at the cent.
func RoundTax(subtotal Cents, rate float64) Cents {
	return Cents(math.Round(float64(subtotal) * rate))
}
