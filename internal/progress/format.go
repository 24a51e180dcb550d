package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for one locale with a fallback currency.
type Formatter struct {
	printer         *message.Printer
	defaultCurrency currency.Unit
}

// NewFormatter parses locale (a BCP 47 tag such as "ru-RU") and the ISO code
// used when a campaign carries none.
func NewFormatter(locale, defaultCurrency string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := parseCurrency(defaultCurrency)
	if err != nil {
		return nil, err
	}
	return &Formatter{printer: message.NewPrinter(tag), defaultCurrency: unit}, nil
}

func parseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", common.ErrUnsupportedCurrency, code)
	}
	return unit, nil
}

// FormatCurrency formats amount with no fractional digits, grouped per the
// formatter locale and prefixed with the ISO code, e.g. "KGS 12,500".
// An empty code selects the default currency; an unknown one returns an
// error wrapping common.ErrUnsupportedCurrency.
func (f *Formatter) FormatCurrency(amount float64, code string) (string, error) {
	unit := f.defaultCurrency
	if strings.TrimSpace(code) != "" {
		var err error
		if unit, err = parseCurrency(code); err != nil {
			return "", err
		}
	}
	return unit.String() + " " + f.FormatNumber(amount), nil
}

// FormatOrPlain is FormatCurrency with the caller-side fallback: when the
// code cannot be formatted the plain rounded number is returned.
func (f *Formatter) FormatOrPlain(amount float64, code string) string {
	s, err := f.FormatCurrency(amount, code)
	if err != nil {
		return strconv.FormatFloat(math.Round(finite(amount)), 'f', 0, 64)
	}
	return s
}

// FormatNumber groups a rounded amount per the formatter locale.
func (f *Formatter) FormatNumber(amount float64) string {
	return f.printer.Sprint(number.Decimal(math.Round(finite(amount)), number.MaxFractionDigits(0)))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// View holds the derived display values of one campaign.
type View struct {
	Percent    int    `json:"percent"`
	Raised     string `json:"raised"`
	Goal       string `json:"goal"`
	DonorCount int    `json:"donorCount"`
}

// Describe derives the display values for raised/goal in currency code.
func (f *Formatter) Describe(raised, goal float64, donorCount int, code string) View {
	if donorCount < 0 {
		donorCount = 0
	}
	return View{
		Percent:    Percentage(raised, goal),
		Raised:     f.FormatOrPlain(raised, code),
		Goal:       f.FormatOrPlain(goal, code),
		DonorCount: donorCount,
	}
}

// Bar draws a fixed-width text progress bar for percent.
func Bar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
