// Package http provides http transport for stored reports
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	perr "unwrapped/internal/platform/errors"
	phttp "unwrapped/internal/platform/net/http"
	"unwrapped/internal/services/report/domain"
)

// Register mounts report endpoints on the given router
func Register(r phttp.Router, cat domain.CataloguePort) {
	h := &handlers{cat: cat}

	r.Get("/years", h.years)
	r.Get("/reports/{year}", h.report)
}

type handlers struct{ cat domain.CataloguePort }

func (h *handlers) years(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	years, err := h.cat.Years(r.Context())
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	if years == nil {
		years = []int{}
	}
	phttp.RespondOK(w, r, struct {
		Years []int `json:"years"`
	}{Years: years})
}

func (h *handlers) report(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		phttp.RespondError(w, r, perr.New(perr.ErrorCodeValidation, "year must be an integer"))
		return
	}

	raw, err := h.cat.Load(r.Context(), year)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	phttp.RespondOK(w, r, json.RawMessage(raw))
}
