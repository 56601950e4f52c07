package httpadapter

import (
	"context"
	"net/http"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// handleCreate creates the caller's campaign. It responds 201 with the
// receipt, 409 when the caller already has a campaign and 422 when the
// caller cannot fund the allocation.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := signerFrom(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "missing_signer")
		return
	}
	var req createRequest
	if err := decode(r, &req); err != nil {
		writeStatus(w, http.StatusBadRequest, "invalid_json")
		return
	}
	receipt, err := h.svc.Create(r.Context(), caller, req.Name, req.Description)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

// handleDonate transfers lamports from the caller to the campaign in the
// path.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	h.handleTransfer(w, r, h.svc.Donate)
}

// handleWithdraw transfers lamports from the campaign in the path to the
// caller, who must be its admin.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleTransfer(w, r, h.svc.Withdraw)
}

type transferFunc = func(ctx context.Context, caller domain.PublicKey, campaign domain.Address, amount uint64) (*port.Receipt, error)

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request, op transferFunc) {
	caller, ok := signerFrom(r.Context())
	if !ok {
		writeStatus(w, http.StatusUnauthorized, "missing_signer")
		return
	}
	addr, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req amountRequest
	if err = decode(r, &req); err != nil || req.Amount == nil {
		writeStatus(w, http.StatusBadRequest, "invalid_json")
		return
	}
	receipt, err := op(r.Context(), caller, addr, *req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}
