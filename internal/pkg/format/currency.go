package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the ISO 4217 code used when no fiat currency is configured.
const DefaultCurrency = "USD"

// Currency renders value as an amount of the ISO 4217 currency code, using
// the conventions of the given locale.
func Currency(code string, value decimal.Decimal, locale language.Tag) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", err
	}

	amount, _ := value.Float64()
	return message.NewPrinter(locale).Sprint(currency.Symbol(unit.Amount(amount))), nil
}
