package services

import (
	"context"
	"time"

	"github.com/samuelnapitupulu18/NusaCare/internal/common"
)

// Receipt is the outcome of a successful mock payment.
type Receipt struct {
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
}

// Transaction is a single entry of the mock billing history.
type Transaction struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// BillingService simulates payment processing and serves the fixed
// transaction history of the demo account.
type BillingService struct {
	telemetry *Telemetry
	delay     time.Duration
}

func NewBillingService(telemetry *Telemetry, delay time.Duration) *BillingService {
	return &BillingService{telemetry: telemetry, delay: delay}
}

// Pay simulates a card/bank payment: a fixed processing delay, then a 10%
// chance of a decline. The delay respects context cancellation.
func (s *BillingService) Pay(ctx context.Context, amount float64, method string) (*Receipt, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.telemetry.PaymentDeclined() {
		return nil, common.ErrorPaymentDeclined
	}

	return &Receipt{
		Status:        "SUCCESS",
		TransactionID: s.telemetry.TransactionID(),
		Date:          time.Now(),
		Amount:        amount,
		Method:        method,
	}, nil
}

// Transactions returns the mock billing history.
func (s *BillingService) Transactions(ctx context.Context) []Transaction {
	return []Transaction{
		{ID: "TXN-8821", Title: "Bill Payment - Jan", Date: "2026-01-25", Amount: 350000, Status: "SUCCESS"},
		{ID: "TXN-7721", Title: "Bill Payment - Dec", Date: "2025-12-25", Amount: 350000, Status: "SUCCESS"},
		{ID: "TXN-6621", Title: "Speed Boost 24h", Date: "2025-11-10", Amount: 50000, Status: "SUCCESS"},
	}
}
