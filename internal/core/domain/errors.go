package domain

import "errors"

var (
	ErrDuplicateAccount   = errors.New("duplicate account")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrTransferFailure    = errors.New("transfer failure")

	ErrAccountNotFound = errors.New("account not found")
	ErrNotCampaign     = errors.New("account is not a campaign")
	ErrRecordTooLarge  = errors.New("record exceeds account space")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorCode returns a stable machine readable code for err. Errors outside
// the domain taxonomy map to "internal".
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrArithmeticOverflow):
		return "arithmetic_overflow"
	case errors.Is(err, ErrTransferFailure):
		return "transfer_failure"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrNotCampaign):
		return "not_campaign"
	case errors.Is(err, ErrRecordTooLarge):
		return "record_too_large"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "internal"
	}
}
