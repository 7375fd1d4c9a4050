package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseCourseID checks that parsing never panics on arbitrary input and
// that accepted values round-trip byte for byte.
func FuzzParseCourseID(f *testing.F) {
	f.Add("")
	f.Add(NewCourseID().String())
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("'; DROP TABLE courses;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseCourseID(input)
		if err != nil {
			return
		}

		roundTrip, err := ParseCourseID(id.String())
		if err != nil {
			t.Errorf("accepted ID failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed ID value")
		}

		if !utf8.ValidString(id.String()) {
			t.Error("accepted ID is not valid UTF-8")
		}
	})
}
