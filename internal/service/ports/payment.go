package ports

import "context"

// PaymentGateway is the opaque boolean oracle the engine consumes; wire
// formats, signatures and QR generation live behind it.
type PaymentGateway interface {
	Refund(ctx context.Context, paymentRef string, amount float64, reason string) (bool, error)
}
