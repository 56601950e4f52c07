package httpadapter

import "net/http"

type balanceResponse struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
}

// handleListCampaigns returns every campaign on the ledger.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign with its balance and reserve
// floor. Unknown addresses and non-campaign accounts yield 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	addr, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	info, err := h.svc.GetCampaign(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// handleGetBalance returns the lamports held by any account.
func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	addr, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	lamports, err := h.svc.GetBalance(r.Context(), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Address: addr.String(), Lamports: lamports})
}
