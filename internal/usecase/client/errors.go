package client

import (
	"errors"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/client"
)

// DuplicateError carrega o registro existente para a resposta 400.
type DuplicateError struct {
	Match *domain.DuplicateMatch
}

func (e *DuplicateError) Error() string {
	return "duplicate_client"
}

func AsDuplicate(err error) (*DuplicateError, bool) {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
