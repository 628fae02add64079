package server

import (
	"errors"
	"net/http"

	"github.com/campusconnect/campus/internal/api"
	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
)

func (s server) register(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/register Accounts Register
	//
	// Registers account with a campus email.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/RegisterRequest"
	// responses:
	//   '201':
	//     description: registered account
	//     schema:
	//       "$ref": "#/definitions/Account"
	//   '400':
	//     description: invalid email, password or name
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: email is already registered
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req RegisterRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.s.Register(r.Context(), req.Email, req.Password, req.Name, req.SetupCode)
	if err != nil {
		writeServiceError(w, r, err, "register")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIAccount(a, s.now()))
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth/login Accounts Login
	//
	// Returns session token.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/LoginRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/LoginResponse"
	//   '401':
	//     description: bad credentials
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: account is banned
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, a, err := s.s.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			api.WriteError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeServiceError(w, r, err, "login")
		return
	}

	api.WriteOK(w, http.StatusOK, LoginResponse{
		Token:   token,
		Account: toAPIAccount(a, s.now()),
	})
}

func (s server) getMe(w http.ResponseWriter, r *http.Request) {
	a, err := s.s.GetAccount(r.Context(), caller(r))
	if err != nil {
		writeServiceError(w, r, err, "get account")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIAccount(a, s.now()))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := s.s.GetAccount(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get account")
		return
	}
	if a.IsBanned {
		api.WriteError(w, http.StatusNotFound, "account not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(a))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.UpdateProfile(r.Context(), caller(r), &entities.Profile{
		Year:       req.Year,
		Branch:     req.Branch,
		Bio:        req.Bio,
		Interests:  req.Interests,
		LookingFor: req.LookingFor,
	}); err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}

	s.getMe(w, r)
}

func (s server) photoUpload(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /me/photo Accounts PhotoUpload
	//
	// Returns pre-signed url to PUT the profile photo to. The photo is set on the account immediately.
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
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/UploadTicket"

	var req UploadRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := s.s.PhotoUploadTicket(r.Context(), caller(r), req.ContentType)
	if err != nil {
		writeServiceError(w, r, err, "create photo upload")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPITicket(t))
}

func (s server) upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := s.s.UploadTicket(r.Context(), caller(r), req.ContentType)
	if err != nil {
		writeServiceError(w, r, err, "create upload")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPITicket(t))
}

func (s server) listPlans(w http.ResponseWriter, _ *http.Request) {
	// swagger:operation GET /plans Billing ListPlans
	//
	// Lists subscription plans ordered by rank.
	//
	// ---
	// responses:
	//   '200':
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Plan"

	api.WriteOK(w, http.StatusOK, toAPIPlans(plan.All()))
}

func (s server) subscribe(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /subscriptions Billing Subscribe
	//
	// Creates payment order for a paid plan.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SubscribeRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/Order"
	//   '400':
	//     description: free or unknown plan
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SubscribeRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := s.s.Subscribe(r.Context(), caller(r), req.Plan)
	if err != nil {
		writeServiceError(w, r, err, "subscribe")
		return
	}

	api.WriteOK(w, http.StatusOK, Order{
		ID:       o.ID,
		Plan:     o.Plan.String(),
		Amount:   o.Amount,
		Currency: o.Currency,
		KeyID:    o.KeyID,
	})
}

func (s server) confirmPayment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /subscriptions/confirm Billing ConfirmPayment
	//
	// Verifies checkout signature and applies the paid plan.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/PaymentCallbackRequest"
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/Account"
	//   '403':
	//     description: signature verification failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req PaymentCallbackRequest
	if err := api.Decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.s.ConfirmPayment(r.Context(), caller(r), &entities.PaymentConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Plan:      req.Plan,
	})
	if err != nil {
		writeServiceError(w, r, err, "confirm payment")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIAccount(a, s.now()))
}
