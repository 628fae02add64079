package server

import (
	"net/http"

	"github.com/campusconnect/campus/internal/api"
	"github.com/campusconnect/campus/internal/entities"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Feed ListPosts
	//
	// Lists posts newest first.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: hashtag
	//   description: filters posts by hashtag, leading # is optional
	//   in: query
	//   required: false
	//   example: fest
	// - name: featured
	//   description: returns only featured posts
	//   in: query
	//   required: false
	//   type: boolean
	// responses:
	//   '200':
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"

	featured, err := queryBool(r, "featured")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid featured")
		return
	}

	pp, err := s.s.ListPosts(r.Context(), r.URL.Query().Get("hashtag"), featured)
	if err != nil {
		writeServiceError(w, r, err, "list posts")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(pp))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CreatePost(r.Context(), caller(r), req.Type, req.Text, req.Image)
	if err != nil {
		writeServiceError(w, r, err, "create post")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) trendingHashtags(w http.ResponseWriter, r *http.Request) {
	hh, err := s.s.TrendingHashtags(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list trending hashtags")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIHashtags(hh))
}

func (s server) createStory(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /stories Stories CreateStory
	//
	// Creates a story living 24 hours and returns pre-signed url to PUT its media to.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UploadRequest"
	// responses:
	//   '201':
	//     schema:
	//       "$ref": "#/definitions/CreateStoryResponse"

	var req UploadRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, t, err := s.s.CreateStory(r.Context(), caller(r), req.ContentType)
	if err != nil {
		writeServiceError(w, r, err, "create story")
		return
	}

	api.WriteOK(w, http.StatusCreated, CreateStoryResponse{
		Story:  toAPIStory(st),
		Upload: toAPITicket(t),
	})
}

func (s server) listStories(w http.ResponseWriter, r *http.Request) {
	author, ok := pathID(r, "author")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid author")
		return
	}

	ss, err := s.s.ListStories(r.Context(), author)
	if err != nil {
		writeServiceError(w, r, err, "list stories")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIStories(ss))
}

func (s server) listStoryAuthors(w http.ResponseWriter, r *http.Request) {
	aa, err := s.s.ListStoryAuthors(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, err, "list story authors")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfiles(aa))
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	ee, err := s.s.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list events")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIEvents(ee))
}

func (s server) createEvent(w http.ResponseWriter, r *http.Request) {
	var req Event
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.s.CreateEvent(r.Context(), caller(r), &entities.Event{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		StartsAt:    req.StartsAt,
		Location:    req.Location,
		IsOfficial:  req.IsOfficial,
		Highlight:   req.Highlight,
	})
	if err != nil {
		writeServiceError(w, r, err, "create event")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIEvent(e))
}

func (s server) createReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.s.CreateReport(r.Context(), caller(r), req.PostID, req.GossipID, req.Reason)
	if err != nil {
		writeServiceError(w, r, err, "create report")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIReport(rep))
}
