package server

import (
	"net/http"

	"github.com/campusconnect/campus/internal/api"
)

func (s server) swipeCandidates(w http.ResponseWriter, r *http.Request) {
	aa, err := s.s.SwipeCandidates(r.Context(), caller(r), r.URL.Query().Get("mode"))
	if err != nil {
		writeServiceError(w, r, err, "list swipe candidates")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfiles(aa))
}

func (s server) swipeStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.s.SwipeStatus(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, err, "get swipe status")
		return
	}

	api.WriteOK(w, http.StatusOK, SwipeStatus{
		Plan:      st.Plan.String(),
		Used:      st.Used,
		Limit:     st.Limit,
		Unlimited: st.Unlimited,
	})
}

func (s server) swipe(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /swipes Swipes Swipe
	//
	// Likes target account. Consumes one swipe of the daily quota and creates a match on mutual like.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SwipeRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/SwipeResponse"
	//   '400':
	//     description: self swipe or unknown mode
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: target not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '429':
	//     description: daily swipe limit reached
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SwipeRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.s.Swipe(r.Context(), caller(r), req.Target, req.Mode)
	if err != nil {
		writeServiceError(w, r, err, "swipe")
		return
	}

	api.WriteOK(w, http.StatusOK, SwipeResponse{
		Matched: res.Matched,
		Match:   toAPIMatch(res.Match),
	})
}

func (s server) likesReceived(w http.ResponseWriter, r *http.Request) {
	aa, err := s.s.LikesReceived(r.Context(), caller(r), r.URL.Query().Get("mode"))
	if err != nil {
		writeServiceError(w, r, err, "list likes")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfiles(aa))
}

func (s server) listMatches(w http.ResponseWriter, r *http.Request) {
	mm, err := s.s.ListMatches(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, err, "list matches")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMatches(mm))
}

func (s server) listMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	mm, err := s.s.ListMessages(r.Context(), id, caller(r))
	if err != nil {
		writeServiceError(w, r, err, "list messages")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMessages(mm))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req TextRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.SendMessage(r.Context(), id, caller(r), req.Text)
	if err != nil {
		writeServiceError(w, r, err, "send message")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIMessage(m))
}
