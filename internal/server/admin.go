package server

import (
	"net/http"

	"github.com/campusconnect/campus/internal/api"
)

func (s server) listAccounts(w http.ResponseWriter, r *http.Request) {
	banned, err := queryBool(r, "banned")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid banned")
		return
	}

	aa, err := s.s.ListAccounts(r.Context(), caller(r), banned)
	if err != nil {
		writeServiceError(w, r, err, "list accounts")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIAccounts(aa, s.now()))
}

func (s server) setBanned(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /admin/accounts/{id}/ban Admin SetBanned
	//
	// Bans or unbans an account. Admins can not be banned.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/BanRequest"
	// responses:
	//   '204':
	//     description: done
	//   '403':
	//     description: caller is not admin or target is admin
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req BanRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.SetBanned(r.Context(), caller(r), id, req.Banned); err != nil {
		writeServiceError(w, r, err, "set banned")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.DeletePost(r.Context(), caller(r), id); err != nil {
		writeServiceError(w, r, err, "delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) featurePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req FeatureRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.FeaturePost(r.Context(), caller(r), id, req.Featured); err != nil {
		writeServiceError(w, r, err, "feature post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) deleteGossip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.DeleteGossip(r.Context(), caller(r), id); err != nil {
		writeServiceError(w, r, err, "delete gossip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) featureGossip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req FeatureRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.FeatureGossip(r.Context(), caller(r), id, req.Featured); err != nil {
		writeServiceError(w, r, err, "feature gossip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listReports(w http.ResponseWriter, r *http.Request) {
	resolved, err := queryBool(r, "resolved")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid resolved")
		return
	}

	rr, err := s.s.ListReports(r.Context(), caller(r), resolved)
	if err != nil {
		writeServiceError(w, r, err, "list reports")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIReports(rr))
}

func (s server) resolveReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req ResolveReportRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.ResolveReport(r.Context(), caller(r), id, req.RemoveContent); err != nil {
		writeServiceError(w, r, err, "resolve report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) stats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /admin/stats Admin Stats
	//
	// Returns dashboard totals and posts per day for the last 7 days.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: dashboard summary
	//     schema:
	//       "$ref": "#/definitions/Stats"
	//   '403':
	//     description: caller is not admin
	//     schema:
	//       "$ref": "#/definitions/Error"

	st, err := s.s.Stats(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, err, "get stats")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIStats(st))
}

func (s server) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CreateAnnouncement(r.Context(), caller(r), req.Text, req.Image)
	if err != nil {
		writeServiceError(w, r, err, "create announcement")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(p))
}
