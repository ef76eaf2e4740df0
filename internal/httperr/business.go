package httperr

import "errors"

// Kind classifies a business failure so the HTTP layer can pick a status
// without matching individual codes.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
)

type BusinessError struct {
	Kind     Kind
	Code     string
	Entity   string
	EntityID string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(entity, id string) error {
	return BusinessError{
		Kind:     KindNotFound,
		Code:     entity + "_not_found",
		Entity:   entity,
		EntityID: id,
	}
}

func ErrInvalidState(code string) error {
	return BusinessError{Kind: KindInvalidState, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
