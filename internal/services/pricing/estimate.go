package pricing

import (
	"moneybag/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Transaction mix assumed when estimating cost. Not derived from merchant
// input; product has not asked for it to be configurable.
const (
	CardShare   = 0.6
	WalletShare = 0.4
)

// CurrencySuffix is appended to formatted totals.
const CurrencySuffix = " BDT"

var (
	hundred = decimal.NewFromInt(100)
	printer = message.NewPrinter(language.English)
)

// EstimateMonthlyCost derives the expected monthly cost from the declared
// volume and the quoted rates and fee.
func EstimateMonthlyCost(monthlyVolume, cardRate, walletRate, monthlyFee string) models.CostEstimate {
	volume := decimal.NewFromFloat(parseVolume(monthlyVolume))

	cardFees := volume.
		Mul(decimal.NewFromFloat(CardShare)).
		Mul(decimal.NewFromFloat(parseRate(cardRate))).
		Div(hundred)
	walletFees := volume.
		Mul(decimal.NewFromFloat(WalletShare)).
		Mul(decimal.NewFromFloat(parseRate(walletRate))).
		Div(hundred)

	transactionFees := cardFees.Add(walletFees)
	fee := parseFee(monthlyFee)
	total := transactionFees.Add(decimal.NewFromInt(fee)).Round(0).IntPart()

	return models.CostEstimate{
		TransactionFees: transactionFees.Round(2).InexactFloat64(),
		MonthlyFee:      fee,
		Total:           total,
		Formatted:       FormatBDT(total),
	}
}

// FormatBDT renders an amount with thousands separators, e.g. "22,200 BDT".
func FormatBDT(amount int64) string {
	return printer.Sprintf("%d", amount) + CurrencySuffix
}
