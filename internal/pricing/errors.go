package pricing

import "errors"

var (
	// ErrTariffNotFound means no active tariff matches the stay's scope.
	// Callers must hold the session for manual billing rather than treat
	// the fee as zero.
	ErrTariffNotFound = errors.New("no active tariff for scope")

	// ErrAmbiguousTariff means more than one active tariff matched a scope.
	// Resolution still succeeds with the most recently created tariff, but
	// the ambiguity is reported so the configuration can be fixed.
	ErrAmbiguousTariff = errors.New("multiple active tariffs for scope")

	// ErrExitBeforeEntry means the exit timestamp precedes the entry
	// timestamp. The fee is not computed.
	ErrExitBeforeEntry = errors.New("exit time precedes entry time")
)
