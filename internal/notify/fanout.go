package notify

import (
	"context"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/service"

	"github.com/rs/zerolog"
)

// MarketInvalidator drops cached market projections
type MarketInvalidator interface {
	InvalidateMarket(ctx context.Context, marketID string) error
}

type Broadcaster interface {
	Broadcast(msg Message)
}

// MarketFanout runs after every committed market change: the cached
// projection is dropped first so clients reacting to the broadcast read
// fresh state.
type MarketFanout struct {
	cache  MarketInvalidator
	hub    Broadcaster
	logger zerolog.Logger
}

var _ service.MarketObserver = (*MarketFanout)(nil)

// NewMarketFanout builds the observer. cache may be nil when caching is disabled.
func NewMarketFanout(cache MarketInvalidator, hub Broadcaster, logger zerolog.Logger) *MarketFanout {
	return &MarketFanout{cache: cache, hub: hub, logger: logger}
}

func (f *MarketFanout) MarketChanged(ctx context.Context, market *model.Market, event model.EventType) {
	if market == nil {
		return
	}
	if f.cache != nil {
		if err := f.cache.InvalidateMarket(ctx, market.ID); err != nil {
			f.logger.Warn().Err(err).Str("market_id", market.ID).Msg("failed to invalidate cached market")
		}
	}
	f.hub.Broadcast(NewMessage(market, event))
}
