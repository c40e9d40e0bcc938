package notify

import (
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/odds"
)

// Message is a JSON message sent to websocket clients
type Message struct {
	Type           string      `json:"type"`
	MarketID       string      `json:"market_id"`
	State          string      `json:"state"`
	YesPool        int64       `json:"yes_pool"`
	NoPool         int64       `json:"no_pool"`
	YesProbability string      `json:"yes_probability"`
	NoProbability  string      `json:"no_probability"`
	Outcome        *model.Side `json:"outcome,omitempty"`
	Halted         bool        `json:"halted,omitempty"`
}

var messageTypes = map[model.EventType]string{
	model.EventMarketCreated:     "market_created",
	model.EventMarketLocked:      "market_locked",
	model.EventStakePlaced:       "pool_update",
	model.EventMarketResolved:    "market_resolved",
	model.EventMarketVoided:      "market_voided",
	model.EventMarketHalted:      "market_halted",
	model.EventMarketHaltCleared: "market_halt_cleared",
}

// NewMessage describes a market after a committed change
func NewMessage(m *model.Market, event model.EventType) Message {
	msgType, ok := messageTypes[event]
	if !ok {
		msgType = "market_update"
	}
	pools := odds.PoolsOf(m)
	return Message{
		Type:           msgType,
		MarketID:       m.ID,
		State:          m.State.String(),
		YesPool:        m.YesPool,
		NoPool:         m.NoPool,
		YesProbability: odds.ImpliedProbability(pools, model.SideYes).StringFixed(4),
		NoProbability:  odds.ImpliedProbability(pools, model.SideNo).StringFixed(4),
		Outcome:        m.Outcome,
		Halted:         m.Halted,
	}
}
