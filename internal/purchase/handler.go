package purchase

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coursebay/internal/course"
	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/httputil"
	"coursebay/pkg/requestcontext"
)

// Handler wires the purchase endpoints to the purchase service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs the purchase handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the user-gated purchase endpoints. The router group must
// already run the user authorization gate.
func (h *Handler) Register(r chi.Router) {
	r.Post("/course/purchase", h.HandlePurchase)
	r.Get("/user/purchases", h.HandleListPurchases)
}

type purchaseResponse struct {
	Message    string        `json:"message"`
	PurchaseID id.PurchaseID `json:"purchaseId"`
}

type purchasedCoursesResponse struct {
	Courses []course.CourseResponse `json:"courses"`
}

func requireUserID(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return "", false
	}
	return userID, true
}

// HandlePurchase handles POST /course/purchase.
func (h *Handler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PurchaseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	recorded, err := h.service.Purchase(ctx, userID, req.ParsedCourseID())
	if err != nil {
		h.logger.WarnContext(ctx, "purchase failed",
			"user_id", userID,
			"course_id", req.ParsedCourseID(),
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, purchaseResponse{
		Message:    "course purchased successfully",
		PurchaseID: recorded.ID,
	})
}

// HandleListPurchases handles GET /user/purchases.
func (h *Handler) HandleListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	courses, err := h.service.ListPurchases(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, purchasedCoursesResponse{Courses: course.FromCourses(courses)})
}
