package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Cents is a USD amount in whole cents. All monetary fields in the system
// use this representation; floats never carry money.
type Cents int64

// Dollars returns the amount as a float for display-only computations.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Format renders the amount as a localized dollar string, e.g. "$1,234.50".
// Unknown locales fall back to US English.
func Format(c Cents, locale string) string {
	p := message.NewPrinter(tagFor(locale))
	return p.Sprintf("$%v", number.Decimal(c.Dollars(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func tagFor(locale string) language.Tag {
	switch locale {
	case "es":
		return language.LatinAmericanSpanish
	default:
		return language.AmericanEnglish
	}
}
