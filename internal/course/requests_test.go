package course

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "coursebay/pkg/domain"
)

func TestCreateCourseRequest_Validate(t *testing.T) {
	valid := func() CreateCourseRequest {
		return CreateCourseRequest{
			Name:        "Intro to Analytical Engines",
			Description: "Programming the first general-purpose computer.",
			Cost:        4900,
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("free course allowed", func(t *testing.T) {
		req := valid()
		req.Cost = 0
		require.NoError(t, req.Validate())
	})

	t.Run("name bounds", func(t *testing.T) {
		req := valid()
		req.Name = "Too short"
		assert.Error(t, req.Validate())

		req = valid()
		req.Name = strings.Repeat("a", 51)
		assert.Error(t, req.Validate())
	})

	t.Run("description bounds", func(t *testing.T) {
		req := valid()
		req.Description = "Below minimum"
		assert.Error(t, req.Validate())

		req = valid()
		req.Description = strings.Repeat("a", 151)
		assert.Error(t, req.Validate())
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		req := valid()
		req.Cost = -1
		assert.Error(t, req.Validate())
	})
}

func TestAddContentRequest_Validate(t *testing.T) {
	courseID := id.NewCourseID()
	valid := func() AddContentRequest {
		return AddContentRequest{
			CourseID: courseID.String(),
			Title:    "Punched card basics",
			Body:     "How operations are encoded on cards.",
			Duration: "12m",
			VideoURL: "https://videos.example.com/cards",
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, courseID, req.ParsedCourseID())
		assert.Equal(t, "Punched card basics", req.Item().Title)
	})

	t.Run("bad course id", func(t *testing.T) {
		req := valid()
		req.CourseID = "not-an-id"
		assert.Error(t, req.Validate())
	})

	t.Run("missing duration", func(t *testing.T) {
		req := valid()
		req.Duration = "  "
		assert.Error(t, req.Validate())
	})

	t.Run("video url must be http(s)", func(t *testing.T) {
		for _, bad := range []string{"", "not a url", "ftp://videos.example.com/x", "javascript:alert(1)"} {
			req := valid()
			req.VideoURL = bad
			assert.Error(t, req.Validate(), "url %q", bad)
		}
	})
}

func TestRemoveContentRequest_Validate(t *testing.T) {
	req := RemoveContentRequest{
		CourseID: id.NewCourseID().String(),
		Title:    "Punched card basics",
		Body:     "How operations are encoded on cards.",
	}
	require.NoError(t, req.Validate())

	req.Title = "short"
	assert.Error(t, req.Validate())
}
