package course

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
	"coursebay/pkg/platform/httputil"
	"coursebay/pkg/requestcontext"
)

// Handler wires the course lifecycle endpoints to the course service.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs the course handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterAdmin mounts the admin-gated lifecycle endpoints. The router group
// must already run the admin authorization gate.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/create", h.HandleCreate)
	r.Delete("/admin/course/{id}", h.HandleDelete)
	r.Put("/admin/courseContent", h.HandleAddContent)
	r.Delete("/admin/courseContent", h.HandleRemoveContent)
}

// RegisterPublic mounts the unauthenticated catalog endpoint.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/course/", h.HandleList)
}

type messageResponse struct {
	Message string `json:"message"`
}

type createResponse struct {
	Message  string      `json:"message"`
	CourseID id.CourseID `json:"courseId"`
}

type ContentItemResponse struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Duration string `json:"duration"`
	VideoURL string `json:"videoUrl"`
}

type CourseResponse struct {
	ID          id.CourseID           `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Author      string                `json:"author"`
	Cost        int64                 `json:"cost"`
	Content     []ContentItemResponse `json:"content"`
}

type catalogResponse struct {
	Courses []CourseResponse `json:"courses"`
}

func fromCourse(c Course) CourseResponse {
	content := make([]ContentItemResponse, 0, len(c.Content))
	for _, item := range c.Content {
		content = append(content, ContentItemResponse(item))
	}
	return CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Author:      c.Author,
		Cost:        c.Cost,
		Content:     content,
	}
}

// FromCourses maps courses to their public representation.
func FromCourses(courses []Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, fromCourse(c))
	}
	return out
}

func requireAdminID(w http.ResponseWriter, r *http.Request) (id.AdminID, bool) {
	adminID := requestcontext.AdminID(r.Context())
	if adminID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return "", false
	}
	return adminID, true
}

// HandleCreate handles POST /admin/create.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateCourseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, err := h.service.CreateCourse(ctx, adminID, CreateCourseParams{
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "course creation failed",
			"admin_id", adminID,
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, createResponse{
		Message:  "course created successfully",
		CourseID: created.ID,
	})
}

// HandleDelete handles DELETE /admin/course/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}
	courseID, err := id.ParseCourseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteCourse(ctx, adminID, courseID); err != nil {
		h.logger.WarnContext(ctx, "course deletion failed",
			"admin_id", adminID,
			"course_id", courseID,
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "course deleted successfully"})
}

// HandleAddContent handles PUT /admin/courseContent.
func (h *Handler) HandleAddContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddContentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.AddContent(ctx, adminID, req.ParsedCourseID(), req.Item()); err != nil {
		h.logger.WarnContext(ctx, "adding course content failed",
			"admin_id", adminID,
			"course_id", req.ParsedCourseID(),
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, messageResponse{Message: "content added successfully"})
}

// HandleRemoveContent handles DELETE /admin/courseContent. Removal is
// idempotent, so a body matching nothing still succeeds.
func (h *Handler) HandleRemoveContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RemoveContentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.RemoveContent(ctx, adminID, req.ParsedCourseID(), req.Title, req.Body); err != nil {
		h.logger.WarnContext(ctx, "removing course content failed",
			"admin_id", adminID,
			"course_id", req.ParsedCourseID(),
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, messageResponse{Message: "content deleted successfully"})
}

// HandleList handles GET /course/.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.service.ListCourses(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, catalogResponse{Courses: FromCourses(courses)})
}
