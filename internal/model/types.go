package model

import "strings"

type Side string

const (
	SideYes Side = "YES"
	SideNo  Side = "NO"
)

func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SideYes):
		return SideYes, nil
	case string(SideNo):
		return SideNo, nil
	default:
		return "", ErrInvalidSide
	}
}

func (s Side) String() string {
	return string(s)
}

// Opposite returns the other side of a binary market.
func (s Side) Opposite() Side {
	if s == SideYes {
		return SideNo
	}
	return SideYes
}

type MarketState string

const (
	MarketActive    MarketState = "ACTIVE"
	MarketLocked    MarketState = "LOCKED"
	MarketResolving MarketState = "RESOLVING"
	MarketResolved  MarketState = "RESOLVED"
	MarketVoiding   MarketState = "VOIDING"
	MarketVoided    MarketState = "VOIDED"
)

func ParseMarketState(s string) (MarketState, error) {
	switch MarketState(strings.ToUpper(strings.TrimSpace(s))) {
	case MarketActive:
		return MarketActive, nil
	case MarketLocked:
		return MarketLocked, nil
	case MarketResolving:
		return MarketResolving, nil
	case MarketResolved:
		return MarketResolved, nil
	case MarketVoiding:
		return MarketVoiding, nil
	case MarketVoided:
		return MarketVoided, nil
	default:
		return "", ErrInvalidMarketState
	}
}

func (s MarketState) String() string {
	return string(s)
}

// Open reports whether the market still accepts lifecycle transitions towards settlement.
func (s MarketState) Open() bool {
	return s == MarketActive || s == MarketLocked
}

// Settling reports whether the market is in a transient settlement state that recovery must finish.
func (s MarketState) Settling() bool {
	return s == MarketResolving || s == MarketVoiding
}

// Final reports whether the market has reached a terminal state.
func (s MarketState) Final() bool {
	return s == MarketResolved || s == MarketVoided
}

type EntryKind string

const (
	EntryDeposit      EntryKind = "DEPOSIT"
	EntryStakeDebit   EntryKind = "STAKE_DEBIT"
	EntryPayoutCredit EntryKind = "PAYOUT_CREDIT"
	EntryRefund       EntryKind = "REFUND"
)

func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(strings.ToUpper(strings.TrimSpace(s))) {
	case EntryDeposit:
		return EntryDeposit, nil
	case EntryStakeDebit:
		return EntryStakeDebit, nil
	case EntryPayoutCredit:
		return EntryPayoutCredit, nil
	case EntryRefund:
		return EntryRefund, nil
	default:
		return "", ErrInvalidEntryKind
	}
}

func (k EntryKind) String() string {
	return string(k)
}

// IsCredit reports whether entries of this kind increase the balance.
func (k EntryKind) IsCredit() bool {
	return k != EntryStakeDebit
}

type EventType string

const (
	EventMarketCreated     EventType = "MARKET_CREATED"
	EventMarketLocked      EventType = "MARKET_LOCKED"
	EventStakePlaced       EventType = "STAKE_PLACED"
	EventMarketResolved    EventType = "MARKET_RESOLVED"
	EventMarketVoided      EventType = "MARKET_VOIDED"
	EventMarketHalted      EventType = "MARKET_HALTED"
	EventMarketHaltCleared EventType = "MARKET_HALT_CLEARED"
)

func ParseEventType(s string) (EventType, error) {
	switch EventType(strings.ToUpper(strings.TrimSpace(s))) {
	case EventMarketCreated:
		return EventMarketCreated, nil
	case EventMarketLocked:
		return EventMarketLocked, nil
	case EventStakePlaced:
		return EventStakePlaced, nil
	case EventMarketResolved:
		return EventMarketResolved, nil
	case EventMarketVoided:
		return EventMarketVoided, nil
	case EventMarketHalted:
		return EventMarketHalted, nil
	default:
		return "", ErrInvalidEventType
	}
}

func (t EventType) String() string {
	return string(t)
}

type ExternalStatus string

const (
	ExternalMatched  ExternalStatus = "MATCHED"
	ExternalMismatch ExternalStatus = "MISMATCH"
)

func (s ExternalStatus) String() string {
	return string(s)
}

type AlertSeverity string

const (
	AlertWarning  AlertSeverity = "warning"
	AlertCritical AlertSeverity = "critical"
)
