package controllers

import (
	"net/http"

	"communityhub/internal/delivery/http/helpers"
)

// ZelleController serves the payment-reconciliation stub routes. The bank
// integration is not wired to a live provider, so every route returns a
// neutral empty payload with configured=false instead of failing. Callers
// depend on these shapes; keep them stable.
type ZelleController struct{}

func NewZelleController() *ZelleController {
	return &ZelleController{}
}

// ZelleStats is the payment rollup returned by GET /zelle_stats.
type ZelleStats struct {
	Total     int `json:"total"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Pending   int `json:"pending"`
}

// Stats handles GET /zelle_stats.
func (c *ZelleController) Stats(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool       `json:"success"`
		Configured bool       `json:"configured"`
		Stats      ZelleStats `json:"stats"`
	}{true, false, ZelleStats{}})
}

// Payments handles GET /zelle_payments.
func (c *ZelleController) Payments(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool  `json:"success"`
		Configured bool  `json:"configured"`
		Payments   []any `json:"payments"`
		Total      int   `json:"total"`
	}{true, false, []any{}, 0})
}

// Poller handles GET /zelle_poller.
func (c *ZelleController) Poller(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success     bool `json:"success"`
		Configured  bool `json:"configured"`
		NewPayments int  `json:"newPayments"`
	}{true, false, 0})
}

// Members handles GET /zelle_members.
func (c *ZelleController) Members(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool  `json:"success"`
		Configured bool  `json:"configured"`
		Members    []any `json:"members"`
		Total      int   `json:"total"`
	}{true, false, []any{}, 0})
}

// History handles GET /zelle_history.
func (c *ZelleController) History(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool  `json:"success"`
		Configured bool  `json:"configured"`
		History    []any `json:"history"`
		Total      int   `json:"total"`
	}{true, false, []any{}, 0})
}

// Unconfigured handles the POST control routes (/zelle_scan, /zelle_verify,
// /zelle_reject, /zelle_match, /zelle_seed).
func (c *ZelleController) Unconfigured(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, struct {
		Success    bool   `json:"success"`
		Configured bool   `json:"configured"`
		Message    string `json:"message"`
	}{false, false, "Zelle integration not configured"})
}
