// Package money formats whole-peso prices for the Dominican market.
package money

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FallbackSymbol prefixes amounts when locale-aware formatting is unavailable.
const FallbackSymbol = "RD$"

// Locale is the market the prices are shown in.
var Locale = language.MustParse("es-DO")

// Formatter renders an integer amount of Dominican pesos.
type Formatter interface {
	Format(amount int64) string
}

// LocaleFormatter formats with CLDR data for a locale and currency.
type LocaleFormatter struct {
	printer  *message.Printer
	currency currency.Unit
}

// NewLocaleFormatter returns a formatter for tag and the ISO currency code cur.
func NewLocaleFormatter(tag language.Tag, cur string) (*LocaleFormatter, error) {
	unit, err := currency.ParseISO(cur)
	if err != nil {
		return nil, err
	}
	return &LocaleFormatter{
		printer:  message.NewPrinter(tag),
		currency: unit,
	}, nil
}

// Format renders amount with the currency symbol and no fractional digits.
func (f *LocaleFormatter) Format(amount int64) string {
	return f.printer.Sprintf("%v%v",
		currency.Symbol(f.currency),
		number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FallbackFormatter renders "RD$ 1,234" without locale data.
type FallbackFormatter struct{}

func (FallbackFormatter) Format(amount int64) string {
	return FallbackSymbol + " " + Group(amount)
}

// Group inserts comma thousands separators into an integer.
func Group(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// DOP returns the es-DO peso formatter, or the plain fallback if the locale
// formatter cannot be built.
func DOP() Formatter {
	f, err := NewLocaleFormatter(Locale, "DOP")
	if err != nil {
		return FallbackFormatter{}
	}
	return safeFormatter{primary: f}
}

// safeFormatter falls back to the plain format if the primary panics or
// produces nothing.
type safeFormatter struct {
	primary Formatter
}

func (s safeFormatter) Format(amount int64) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FallbackFormatter{}.Format(amount)
		}
	}()
	out = s.primary.Format(amount)
	if strings.TrimSpace(out) == "" {
		out = FallbackFormatter{}.Format(amount)
	}
	return out
}

// Format renders amount with the default peso formatter.
func Format(amount int64) string {
	return DOP().Format(amount)
}
