package server

import (
	"net/http"

	"github.com/campusconnect/campus/internal/api"
)

func (s server) listGossips(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /gossips Gossip ListGossips
	//
	// Lists gossips which are not removed.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: category
	//   in: query
	//   required: false
	//   type: string
	//   enum: [all, hostel, crush, fest, professors, placements, random]
	// - name: sort
	//   in: query
	//   required: false
	//   default: top
	//   type: string
	//   enum: [top, new]
	// responses:
	//   '200':
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Gossip"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	gg, err := s.s.ListGossips(r.Context(), q.Get("category"), q.Get("sort"))
	if err != nil {
		writeServiceError(w, r, err, "list gossips")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIGossips(gg))
}

func (s server) createGossip(w http.ResponseWriter, r *http.Request) {
	var req CreateGossipRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.s.CreateGossip(r.Context(), caller(r), req.Text, req.Category)
	if err != nil {
		writeServiceError(w, r, err, "create gossip")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIGossip(g))
}

func (s server) getGossip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := s.s.GetGossip(r.Context(), id, caller(r))
	if err != nil {
		writeServiceError(w, r, err, "get gossip")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIGossipDetails(d))
}

func (s server) voteGossip(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /gossips/{id}/votes Gossip VoteGossip
	//
	// Votes for a gossip. Repeating the same direction retracts the vote, the opposite one switches it.
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
	//     "$ref": "#/definitions/VoteRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/VoteResponse"
	//   '403':
	//     description: gossip was removed
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: gossip not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req VoteRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.s.VoteGossip(r.Context(), id, caller(r), req.Direction)
	if err != nil {
		writeServiceError(w, r, err, "vote gossip")
		return
	}

	api.WriteOK(w, http.StatusOK, VoteResponse{
		Upvotes:   res.Upvotes,
		Downvotes: res.Downvotes,
		Score:     res.Score,
		UserVote:  int8(res.UserVote),
	})
}

func (s server) commentGossip(w http.ResponseWriter, r *http.Request) {
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

	c, err := s.s.CommentGossip(r.Context(), id, caller(r), req.Text)
	if err != nil {
		writeServiceError(w, r, err, "comment gossip")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIComment(c))
}
