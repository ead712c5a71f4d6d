package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// OrderCreator is the slice of the Razorpay client the service needs.
type OrderCreator interface {
	CreateOrder(amount int64, currency, receipt string) (string, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds an OrderCreator backed by the Razorpay API.
func NewRazorpayGateway(keyID, keySecret string) OrderCreator {
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *razorpayGateway) CreateOrder(amount int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("gateway order response missing id")
	}
	return orderID, nil
}
