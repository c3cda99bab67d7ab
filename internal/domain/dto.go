package domain

import "strings"

// minorUnitsExp кол-во знаков минорных единиц. Для всех поддерживаемых валют 2.
const minorUnitsExp = 2

const (
	CurrencyUSD = "USD"
	CurrencyJMD = "JMD"

	DefaultCurrency = CurrencyUSD
)

// TransactionIDPrefix префикс локального id транзакции, созданной через платежную ссылку.
const TransactionIDPrefix = "plink_"

// SynthesizedTransactionIDPrefix префикс id транзакции, созданной по событию процессора без платежной ссылки.
const SynthesizedTransactionIDPrefix = "txn_"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// IsTerminal из терминального статуса транзакция в pending не возвращается никогда.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed || s == TransactionStatusCancelled
}

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusCompleted PayoutStatus = "completed"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// TransactionIDForPaymentLink детерминированно выводит id транзакции из id платежной ссылки.
func TransactionIDForPaymentLink(paymentLinkID string) string {
	return TransactionIDPrefix + paymentLinkID
}

// TransactionIDForPaymentIntent детерминированно выводит id транзакции из id payment intent.
func TransactionIDForPaymentIntent(paymentIntentID string) string {
	return SynthesizedTransactionIDPrefix + paymentIntentID
}

// NormalizeCurrency приводит код валюты к верхнему регистру, пустое значение заменяет на DefaultCurrency.
func NormalizeCurrency(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}
