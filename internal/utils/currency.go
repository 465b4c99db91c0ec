package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var SupportedCurrencies = map[string]Currency{
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"AED": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	"SGD": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
}

// RoundAmount rounds a monetary amount to 2 decimal places.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func FormatCurrency(amount float64, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies[DefaultCurrency]
	}

	return fmt.Sprintf("%s%.2f", currency.Symbol, RoundAmount(amount))
}

func ParseCurrencyAmount(amountStr string) (float64, error) {
	// Remove currency symbols and spaces
	cleaned := strings.TrimSpace(amountStr)
	for _, currency := range SupportedCurrencies {
		cleaned = strings.ReplaceAll(cleaned, currency.Symbol, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	if amount < 0 {
		return 0, fmt.Errorf("amount cannot be negative: %s", amountStr)
	}

	return amount, nil
}
