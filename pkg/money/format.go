// Package money formats monetary amounts and tax rates for display. All
// arithmetic elsewhere stays on decimal.Decimal; the float conversion here is
// display-only.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/finbook/bookfile-api/pkg/apperror"
)

// DefaultLocale is used whenever the caller does not request a locale.
const DefaultLocale = "en"

func parseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Tag{}, apperror.NewBadRequestError("Unknown locale: " + locale)
	}
	return tag, nil
}

// FormatAmount renders an amount in the given ISO 4217 currency using the
// locale's standard currency formatting rules.
func FormatAmount(amount decimal.Decimal, currencyCode, locale string) (string, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return "", err
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", apperror.NewBadRequestError("Unknown currency: " + currencyCode)
	}

	value, _ := amount.Float64()
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(value))), nil
}

// FormatPercent renders a rate (0.16 for 16%) using the locale's percentage
// formatting rules.
func FormatPercent(rate decimal.Decimal, locale string) (string, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return "", err
	}

	value, _ := rate.Float64()
	p := message.NewPrinter(tag)
	return p.Sprint(number.Percent(value, number.MaxFractionDigits(4))), nil
}
