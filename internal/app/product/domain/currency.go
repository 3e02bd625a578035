package domain

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale used when no formatter is given explicitly.
const DefaultLocale = "en-US"

// symbolLayout describes where the currency symbol goes relative to the number.
type symbolLayout struct {
	suffix bool
	// space separates symbol and number even for one-character symbols.
	space bool
}

var (
	symbolBefore       = symbolLayout{}
	symbolBeforeSpaced = symbolLayout{space: true}
	symbolAfter        = symbolLayout{suffix: true, space: true}
)

// symbolLayouts maps "language-REGION" or "language" to a layout. The most
// specific key wins; unlisted locales put the symbol first.
var symbolLayouts = map[string]symbolLayout{
	"cs": symbolAfter,
	"de": symbolAfter,
	"fi": symbolAfter,
	"fr": symbolAfter,
	"it": symbolAfter,
	"pl": symbolAfter,
	"ru": symbolAfter,
	"sv": symbolAfter,
	"nl": symbolBeforeSpaced,

	// Spanish writes the symbol last only in Spain; Latin America and the US put it first.
	"es":    symbolBefore,
	"es-ES": symbolAfter,
	"es-EA": symbolAfter,
	"es-IC": symbolAfter,

	"de-CH": symbolBefore,
	"de-LI": symbolBefore,
	"it-CH": symbolBefore,
}

func layoutFor(tag language.Tag) symbolLayout {
	base, _ := tag.Base()
	region, _ := tag.Region()

	if l, ok := symbolLayouts[base.String()+"-"+region.String()]; ok {
		return l
	}
	if l, ok := symbolLayouts[base.String()]; ok {
		return l
	}
	return symbolBefore
}

// CurrencyFormatter renders amounts in the currency and number conventions
// of a fixed locale. The currency is the one most likely used in the locale's
// region, or the one named by a "-u-cu-" extension (e.g. "en-US-u-cu-eur").
// CurrencyFormatter is immutable and safe for concurrent use.
type CurrencyFormatter struct {
	tag     language.Tag
	unit    currency.Unit
	scale   int
	layout  symbolLayout
	printer *message.Printer
}

// NewCurrencyFormatter creates a formatter for the given BCP 47 locale.
// Locales that imply no currency, such as "en-001", yield ErrInvalidLocale.
func NewCurrencyFormatter(locale string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return nil, fmt.Errorf("%w %q: no currency for locale", ErrInvalidLocale, locale)
	}
	scale, _ := currency.Standard.Rounding(unit)

	return &CurrencyFormatter{
		tag:     tag,
		unit:    unit,
		scale:   scale,
		layout:  layoutFor(tag),
		printer: message.NewPrinter(tag),
	}, nil
}

var defaultFormatter = mustCurrencyFormatter(DefaultLocale)

// DefaultCurrencyFormatter returns the formatter for DefaultLocale.
func DefaultCurrencyFormatter() *CurrencyFormatter {
	return defaultFormatter
}

func mustCurrencyFormatter(locale string) *CurrencyFormatter {
	f, err := NewCurrencyFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the canonical form of the formatter's locale.
func (f *CurrencyFormatter) Locale() string {
	return f.tag.String()
}

// Currency returns the ISO 4217 code of the currency used by the formatter.
func (f *CurrencyFormatter) Currency() string {
	return f.unit.String()
}

// FormatAmount renders v with the locale's currency symbol, digit grouping
// and decimal separator, rounded to the currency's standard fraction digits.
func (f *CurrencyFormatter) FormatAmount(v float64) string {
	symbol := f.printer.Sprintf("%v", currency.Symbol(f.unit))
	amount := f.printer.Sprintf("%v", number.Decimal(v, number.Scale(f.scale)))

	if f.layout.suffix {
		return amount + " " + symbol
	}
	if f.layout.space || utf8.RuneCountInString(symbol) > 1 {
		return symbol + " " + amount
	}
	return symbol + amount
}

// FormatMoney renders m like FormatAmount.
func (f *CurrencyFormatter) FormatMoney(m *Money) string {
	return f.FormatAmount(m.Float64())
}
