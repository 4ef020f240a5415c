package accounting

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default presentation settings
const (
	DefaultCurrencySymbol = "₹"
	DefaultLocale         = "en-IN"
)

// MoneyFormatter renders amounts as whole currency units with locale digit
// grouping
type MoneyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewMoneyFormatter builds a formatter. An unparseable locale falls back to
// DefaultLocale.
func NewMoneyFormatter(symbol, locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &MoneyFormatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

var defaultMoney = NewMoneyFormatter(DefaultCurrencySymbol, DefaultLocale)

// Format rounds half away from zero and prints the amount with the symbol
func (f *MoneyFormatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return f.symbol + "0"
	}

	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -rounded)
	}
	return f.symbol + f.printer.Sprintf("%d", rounded)
}

// FormatCurrency formats an amount in rupees with no fraction digits
func FormatCurrency(amount float64) string {
	return defaultMoney.Format(amount)
}

// FormatHours prints hours with one decimal place
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

// FormatDate renders an ISO date as "Sat, 1 Jun". Empty input gives an empty
// string and malformed input is returned unchanged.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(ISODateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 2 Jan")
}
