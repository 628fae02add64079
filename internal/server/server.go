// Package server Campus
//
// The Campus is a campus social network: feed, anonymous gossip, swipes, chat and subscriptions.
//
//	Schemes: https
//	BasePath: /v1
//	Version: 1.0.0
//
//	Produces:
//	- application/json
//	Consumes:
//	- application/json
//
//	SecurityDefinitions:
//	  bearer:
//	    type: apiKey
//	    name: Authorization
//	    in: header
//
// swagger:meta
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/campusconnect/campus/internal/api"
	"github.com/campusconnect/campus/internal/auth"
	mm "github.com/campusconnect/campus/internal/middleware"
	"github.com/campusconnect/campus/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 << 10

const listingsCacheTTL = time.Minute

type server struct {
	s   service.Service
	now func() time.Time
}

// SetupRouter setups handlers to chi router. Public listings are cached in cache when it is not nil.
func SetupRouter(s service.Service, tokens auth.Tokens, cache mm.Storage, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		middleware.RequestSize(maxBodySize),
	)

	srv := server{
		s:   s,
		now: time.Now,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", srv.register)
		r.Post("/auth/login", srv.login)
		r.Get("/plans", srv.listPlans)
		r.Get("/hashtags/trending", mm.Cached(cache, listingsCacheTTL, srv.trendingHashtags))
		r.Get("/events", mm.Cached(cache, listingsCacheTTL, srv.listEvents))

		r.Group(func(r chi.Router) {
			r.Use(mm.Authenticated(tokens))

			r.Get("/me", srv.getMe)
			r.Put("/me", srv.updateProfile)
			r.Post("/me/photo", srv.photoUpload)
			r.Get("/accounts/{id}", srv.getProfile)
			r.Post("/uploads", srv.upload)

			r.Post("/subscriptions", srv.subscribe)
			r.Post("/subscriptions/confirm", srv.confirmPayment)

			r.Get("/gossips", srv.listGossips)
			r.Post("/gossips", srv.createGossip)
			r.Get("/gossips/{id}", srv.getGossip)
			r.Post("/gossips/{id}/votes", srv.voteGossip)
			r.Post("/gossips/{id}/comments", srv.commentGossip)

			r.Get("/swipes/candidates", srv.swipeCandidates)
			r.Get("/swipes/status", srv.swipeStatus)
			r.Post("/swipes", srv.swipe)
			r.Get("/likes", srv.likesReceived)

			r.Get("/matches", srv.listMatches)
			r.Get("/matches/{id}/messages", srv.listMessages)
			r.Post("/matches/{id}/messages", srv.sendMessage)

			r.Get("/posts", srv.listPosts)
			r.Post("/posts", srv.createPost)

			r.Get("/stories", srv.listStoryAuthors)
			r.Post("/stories", srv.createStory)
			r.Get("/stories/{author}", srv.listStories)

			r.Post("/events", srv.createEvent)
			r.Post("/reports", srv.createReport)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/accounts", srv.listAccounts)
				r.Put("/accounts/{id}/ban", srv.setBanned)
				r.Delete("/posts/{id}", srv.deletePost)
				r.Put("/posts/{id}/featured", srv.featurePost)
				r.Delete("/gossips/{id}", srv.deleteGossip)
				r.Put("/gossips/{id}/featured", srv.featureGossip)
				r.Get("/reports", srv.listReports)
				r.Post("/reports/{id}/resolve", srv.resolveReport)
				r.Get("/stats", srv.stats)
				r.Post("/announcements", srv.createAnnouncement)
			})
		})
	})
}

// writeServiceError maps service error kinds to http status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrQuotaExceeded):
		api.WriteError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrRejected), errors.Is(err, service.ErrUnauthorized):
		api.WriteError(w, http.StatusForbidden, err.Error())
	default:
		api.WriteInternalErrorf(r.Context(), w, "failed to %s: %s", action, err.Error())
	}
}

// caller returns id of authenticated account.
func caller(r *http.Request) int64 {
	id, _ := mm.AccountID(r.Context())
	return id
}

func pathID(r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func queryBool(r *http.Request, name string) (bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
