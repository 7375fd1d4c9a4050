package purchase

import (
	id "coursebay/pkg/domain"
)

// PurchaseRequest is the body for POST /course/purchase.
type PurchaseRequest struct {
	CourseID string `json:"courseId"`

	parsedCourseID id.CourseID
}

// Validate parses the course ID.
func (r *PurchaseRequest) Validate() error {
	courseID, err := id.ParseCourseID(r.CourseID)
	if err != nil {
		return err
	}
	r.parsedCourseID = courseID
	return nil
}

// ParsedCourseID returns the validated course ID.
func (r *PurchaseRequest) ParsedCourseID() id.CourseID { return r.parsedCourseID }
