package http

import (
	"errors"
	"net/http"

	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidUsername:         http.StatusBadRequest,
	service.ErrInvalidPassword:         http.StatusBadRequest,
	service.ErrInvalidSearchParams:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists:  http.StatusBadRequest,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrClienteAlreadyExists:   http.StatusConflict,
	store.ErrClienteNotFound:        http.StatusNotFound,
	store.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	store.ErrClienteHasOrdenes:      http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
