package course

import (
	"net/url"
	"strings"

	id "coursebay/pkg/domain"
	dErrors "coursebay/pkg/domain-errors"
)

// CreateCourseRequest is the body for POST /admin/create.
type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
}

// Validate normalizes and validates the course attributes.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateCourseRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)

	if len(r.Name) < 10 || len(r.Name) > 50 {
		return dErrors.New(dErrors.CodeValidation, "name must be 10-50 characters")
	}
	if len(r.Description) < 15 || len(r.Description) > 150 {
		return dErrors.New(dErrors.CodeValidation, "description must be 15-150 characters")
	}
	if r.Cost < 0 {
		return dErrors.New(dErrors.CodeValidation, "cost must not be negative")
	}
	return nil
}

// AddContentRequest is the body for PUT /admin/courseContent.
type AddContentRequest struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Duration string `json:"duration"`
	VideoURL string `json:"videoUrl"`

	parsedCourseID id.CourseID
}

// Validate validates and parses the content payload.
func (r *AddContentRequest) Validate() error {
	courseID, err := id.ParseCourseID(r.CourseID)
	if err != nil {
		return err
	}
	r.parsedCourseID = courseID

	if err := validateContentKey(r.Title, r.Body); err != nil {
		return err
	}
	if strings.TrimSpace(r.Duration) == "" {
		return dErrors.New(dErrors.CodeValidation, "duration is required")
	}
	parsed, err := url.Parse(r.VideoURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return dErrors.New(dErrors.CodeValidation, "videoUrl must be a valid http(s) URL")
	}
	return nil
}

// ParsedCourseID returns the validated course ID.
func (r *AddContentRequest) ParsedCourseID() id.CourseID { return r.parsedCourseID }

// Item returns the content item described by the request.
func (r *AddContentRequest) Item() ContentItem {
	return ContentItem{
		Title:    r.Title,
		Body:     r.Body,
		Duration: r.Duration,
		VideoURL: r.VideoURL,
	}
}

// RemoveContentRequest is the body for DELETE /admin/courseContent. Title and
// body together form the duplicate-detection key being removed.
type RemoveContentRequest struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Body     string `json:"body"`

	parsedCourseID id.CourseID
}

// Validate validates and parses the removal payload.
func (r *RemoveContentRequest) Validate() error {
	courseID, err := id.ParseCourseID(r.CourseID)
	if err != nil {
		return err
	}
	r.parsedCourseID = courseID
	return validateContentKey(r.Title, r.Body)
}

// ParsedCourseID returns the validated course ID.
func (r *RemoveContentRequest) ParsedCourseID() id.CourseID { return r.parsedCourseID }

func validateContentKey(title, body string) error {
	if len(title) < 10 || len(title) > 50 {
		return dErrors.New(dErrors.CodeValidation, "title must be 10-50 characters")
	}
	if len(body) < 10 || len(body) > 150 {
		return dErrors.New(dErrors.CodeValidation, "body must be 10-150 characters")
	}
	return nil
}
