// Package apierror maps domain errors onto HTTP error responses.
package apierror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

// Map converts a domain error into a huma error with the matching HTTP
// status. Errors without a taxonomy kind become a 500 with the fallback
// message so internal details never leak to clients.
func Map(err error, fallback string) error {
	kind, ok := taxonomy.KindOf(err)
	if !ok {
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}

	switch kind {
	case taxonomy.KindNotFound:
		return huma.NewError(http.StatusNotFound, err.Error())
	case taxonomy.KindConflict, taxonomy.KindProtected:
		return huma.NewError(http.StatusConflict, err.Error())
	case taxonomy.KindValidation:
		return huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, err.Error())
	}
}
