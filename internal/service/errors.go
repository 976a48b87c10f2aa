package service

import (
	"errors"
	"fmt"

	"github.com/avc/hosting-storefront/internal/domain"
)

// domainKinds корневые ошибки, которые сервисы возвращают без обертки
var domainKinds = []error{
	domain.ErrNotFound,
	domain.ErrForbidden,
	domain.ErrInvalidState,
	domain.ErrValidation,
	domain.ErrConflict,
	domain.ErrExternal,
	domain.ErrInvalidCredentials,
}

func isDomainError(err error) bool {
	for _, kind := range domainKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// wrap оборачивает инфраструктурную ошибку. Ошибки домена не оборачиваются,
// чтобы обработчики видели их как есть.
func wrap(err error, format string, args ...any) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
