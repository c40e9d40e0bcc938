package model

import "errors"

var (
	ErrInvalidStake         = errors.New("invalid stake")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrMarketClosed         = errors.New("market closed")
	ErrMarketNotActive      = errors.New("market not active")
	ErrDuplicateStake       = errors.New("duplicate stake")
	ErrAlreadyResolved      = errors.New("market already resolved")
	ErrResolutionConflict   = errors.New("resolution conflict")
	ErrExternalMismatch     = errors.New("external mismatch")
	ErrStorageFailure       = errors.New("storage failure")
	ErrMarketHalted         = errors.New("market halted")
	ErrResolutionInProgress = errors.New("resolution in progress")

	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidFee           = errors.New("invalid fee")
	ErrInvalidQuestion      = errors.New("invalid question")
	ErrInvalidSide          = errors.New("invalid side")
	ErrInvalidOutcome       = errors.New("invalid outcome")
	ErrInvalidMarketState   = errors.New("invalid market state")
	ErrInvalidEntryKind     = errors.New("invalid ledger entry kind")
	ErrInvalidEventType     = errors.New("invalid event type")
	ErrDuplicateReference   = errors.New("duplicate ledger reference")
	ErrDuplicateEvent       = errors.New("duplicate event")
	ErrDuplicateSignature   = errors.New("duplicate external signature")
	ErrIdempotencyKeyReused = errors.New("idempotency key reused")

	ErrUserNotFound          = errors.New("user not found")
	ErrMarketNotFound        = errors.New("market not found")
	ErrStakeNotFound         = errors.New("stake not found")
	ErrEventNotFound         = errors.New("event not found")
	ErrLedgerEntryNotFound   = errors.New("ledger entry not found")
	ErrExternalEventNotFound = errors.New("external event not found")
)
