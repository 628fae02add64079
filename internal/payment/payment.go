// Package payment contains payment gateway client.
package payment

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

//go:generate mockgen -destination=./mock/payment.go -package=mock -source=payment.go

// Currency all orders are placed in.
const Currency = "INR"

// ErrBadResponse is returned when gateway response lacks expected fields.
var ErrBadResponse = errors.New("bad gateway response")

// Gateway creates orders and verifies checkout signatures.
type Gateway interface {
	// CreateOrder creates order of amount in the smallest currency unit and returns its id.
	CreateOrder(ctx context.Context, amount int64, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type razorpayGateway struct {
	c      *razorpay.Client
	key    string
	secret string
}

// NewRazorpay ...
func NewRazorpay(key, secret string) Gateway {
	return razorpayGateway{
		c:      razorpay.NewClient(key, secret),
		key:    key,
		secret: secret,
	}
}

func (g razorpayGateway) CreateOrder(ctx context.Context, amount int64, receipt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := g.c.Order.Create(map[string]interface{}{
		"amount":          amount,
		"currency":        Currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: order id is missing", ErrBadResponse)
	}

	return id, nil
}

func (g razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, g.secret)
}

func (g razorpayGateway) KeyID() string {
	return g.key
}
