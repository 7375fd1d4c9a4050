// Package identity owns the credential records for the two disjoint identity
// spaces (admins and users) and the signup/signin flows over them.
package identity

import (
	id "coursebay/pkg/domain"
)

// Admin is a course author. CreatedCourseIDs is a denormalized back-reference
// to the courses this admin created; it is only ever mutated in the same
// transaction as the course row itself.
type Admin struct {
	ID               id.AdminID
	Name             string
	Email            string
	PasswordHash     string
	CreatedCourseIDs []id.CourseID
}

// User is a course buyer. PurchasedCourseIDs holds course IDs (not purchase
// ledger IDs) in purchase order; repeat purchases append again.
type User struct {
	ID                 id.UserID
	Name               string
	Email              string
	PasswordHash       string
	PurchasedCourseIDs []id.CourseID
}
