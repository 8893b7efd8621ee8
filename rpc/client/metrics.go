package client

import (
	"errors"
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"time"
)

// Outcome labels of the exchange counter
const (
	outcomeOK        = "ok"
	outcomeTimeout   = "timeout"
	outcomeTransport = "transport"
	outcomeMalformed = "malformed"
	outcomeError     = "error"
)

// outcomeOf classifies the result of an exchange
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, common.ErrTimeout):
		return outcomeTimeout
	case errors.Is(err, common.ErrTransport):
		return outcomeTransport
	case errors.Is(err, common.ErrMalformedMetadata), errors.Is(err, common.ErrMalformedBody):
		return outcomeMalformed
	default:
		return outcomeError
	}
}

// recordExchange counts the exchange by outcome and tracks its duration
func (c *RPCClient) recordExchange(err error, start time.Time) {
	version := c.protocol.Version()
	c.metrics.GetOrCreateCounter(fmt.Sprintf(`rsclient_exchanges_total{version="%d",outcome="%s"}`, version, outcomeOf(err))).Inc()
	c.metrics.GetOrCreateHistogram(fmt.Sprintf(`rsclient_exchange_duration_seconds{version="%d"}`, version)).UpdateDuration(start)
}
