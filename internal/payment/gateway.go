package payment

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// Gateway adapts the external payment provider to the engine's boolean
// oracle contract. Webhook signatures, QR generation and provider wire
// formats live on the other side of this boundary; the engine only ever
// sees "refund accepted or not".
type Gateway struct {
	sandbox bool
	logger  logger.Logger
}

// NewGateway builds a gateway in sandbox or live mode. Sandbox accepts
// every refund; live mode rejects every refund until a provider client
// is wired in, logging each rejection at error level.
func NewGateway(sandbox bool, logger logger.Logger) *Gateway {
	return &Gateway{sandbox: sandbox, logger: logger}
}

func (g *Gateway) Refund(ctx context.Context, paymentRef string, amount float64, reason string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if g.sandbox {
		// Sandbox mode: accept every refund so the state machine can be
		// exercised without a provider account.
		g.logger.Info("sandbox refund accepted",
			logger.String("payment_ref", paymentRef),
			logger.String("reason", reason),
		)
		return true, nil
	}

	// TODO: call the provider's refund endpoint once credentials and the
	// settlement account are provisioned.
	g.logger.Error("live refunds not configured, rejecting",
		logger.String("payment_ref", paymentRef),
	)
	return false, nil
}
