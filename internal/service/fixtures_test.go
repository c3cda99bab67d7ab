package service

import (
	"io"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fakeMerchant() *domain.User {
	return &domain.User{
		ID:                 gofakeit.UUID(),
		Email:              gofakeit.Email(),
		FullName:           gofakeit.Name(),
		ProcessorAccountID: "acct_" + gofakeit.LetterN(10),
		Country:            "US",
		DefaultCurrency:    domain.CurrencyUSD,
		MemberSince:        time.Now().Add(-30 * 24 * time.Hour),
	}
}

func fakePendingTransaction(userID, paymentLinkID string) *domain.Transaction {
	return &domain.Transaction{
		ID:            domain.TransactionIDForPaymentLink(paymentLinkID),
		UserID:        userID,
		Amount:        2500,
		Currency:      domain.CurrencyUSD,
		Description:   "Logo design",
		Status:        domain.TransactionStatusPending,
		PaymentLinkID: paymentLinkID,
		CustomerName:  gofakeit.Name(),
	}
}
