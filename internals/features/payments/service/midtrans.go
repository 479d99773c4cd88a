package service

import (
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GrossAmount converts a major-unit price into the minor units the
// processor expects (49.99 → 4999).
func GrossAmount(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks the processor for a payment intent and returns
// the client-usable secret (the Snap token) verbatim.
func CreatePaymentIntent(orderID string, price float64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: GrossAmount(price),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
