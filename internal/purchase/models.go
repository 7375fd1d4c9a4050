package purchase

import (
	"time"

	id "coursebay/pkg/domain"
)

// Purchase is one ledger entry recording that a user bought a course at a
// point in time. Repeat purchases of the same course produce separate entries.
type Purchase struct {
	ID          id.PurchaseID
	PurchaserID id.UserID
	CourseID    id.CourseID
	Date        time.Time
}
