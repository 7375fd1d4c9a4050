package identity

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursebay/pkg/platform/httputil"
	"coursebay/pkg/requestcontext"
)

// Handler exposes the signup/signin endpoints for both identity spaces.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs the identity handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public identity endpoints. None of these routes sit
// behind the authorization gate.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/signup", h.HandleAdminSignup)
	r.Post("/admin/signin", h.HandleAdminSignin)
	r.Post("/user/signup", h.HandleUserSignup)
	r.Post("/user/signin", h.HandleUserSignin)
}

type signupResponse struct {
	Message string `json:"message"`
}

type signinResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// HandleAdminSignup handles POST /admin/signup.
func (h *Handler) HandleAdminSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SignupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if _, err := h.service.SignupAdmin(ctx, req.Name, req.Email, req.Password); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, signupResponse{Message: "signup successful"})
}

// HandleAdminSignin handles POST /admin/signin.
func (h *Handler) HandleAdminSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SigninRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tokenString, err := h.service.SigninAdmin(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "admin signin rejected",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, signinResponse{Message: "signin successful", Token: tokenString})
}

// HandleUserSignup handles POST /user/signup.
func (h *Handler) HandleUserSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SignupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if _, err := h.service.SignupUser(ctx, req.Name, req.Email, req.Password); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, signupResponse{Message: "signup successful"})
}

// HandleUserSignin handles POST /user/signin.
func (h *Handler) HandleUserSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SigninRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	tokenString, err := h.service.SigninUser(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "user signin rejected",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, signinResponse{Message: "signin successful", Token: tokenString})
}
