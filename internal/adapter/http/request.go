package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

// createRequest is the body of POST /campaigns.
type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// amountRequest is the body of donation and withdrawal requests. Amounts
// are lamports.
type amountRequest struct {
	Amount *uint64 `json:"amount"`
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// addressParam parses the {address} path parameter.
func addressParam(r *http.Request) (domain.Address, error) {
	return domain.ParseAddress(chi.URLParam(r, "address"))
}
