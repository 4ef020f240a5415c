package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹0", FormatCurrency(0))
	assert.Equal(t, "₹400", FormatCurrency(400))
	assert.Equal(t, "₹1,500", FormatCurrency(1500))
	assert.Equal(t, "₹1,50,000", FormatCurrency(150000))
	assert.Equal(t, "₹1,234", FormatCurrency(1234.4))
	assert.Equal(t, "₹1,235", FormatCurrency(1234.6))
	assert.Equal(t, "-₹250", FormatCurrency(-250))
}

func TestMoneyFormatterCustomSymbol(t *testing.T) {
	f := NewMoneyFormatter("$", "en-US")
	assert.Equal(t, "$12,000", f.Format(12000))

	fallback := NewMoneyFormatter("₹", "not a locale!!")
	assert.Equal(t, "₹900", fallback.Format(900))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5", FormatHours(1.5))
	assert.Equal(t, "0.3", FormatHours(0.25+0.0001))
	assert.Equal(t, "2.0", FormatHours(2))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Sat, 1 Jun", FormatDate("2024-06-01"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "June first", FormatDate("June first"))
}
