package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserPassword(t *testing.T) {
	var u User
	assert.False(t, u.ComparePassword("anything"), "users without a password never match")

	require.NoError(t, u.SetPassword("secret123", bcrypt.MinCost))
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.ComparePassword("secret123"))
	assert.False(t, u.ComparePassword("secret124"))
}

func TestUserCourses(t *testing.T) {
	var u User
	assert.False(t, u.HasCourse("c1"))

	u.AddCourse("c1")
	u.AddCourse("c1")
	u.AddCourse("c2")

	assert.True(t, u.HasCourse("c1"))
	assert.Len(t, u.Courses, 2)
}

func TestCourseAddReviewRunningAverage(t *testing.T) {
	var c Course
	ratings := []int{5, 4, 2, 4}

	sum := 0
	for i, r := range ratings {
		c.AddReview(Review{Rating: r, Comment: "ok"})
		sum += r
		assert.Equal(t, float64(sum)/float64(i+1), c.Ratings)
	}

	assert.Equal(t, 15, c.RatingSum)
	assert.Equal(t, 4, c.RatingCount)
	assert.Equal(t, 3.75, c.Ratings)
	for _, r := range c.Reviews {
		assert.NotEmpty(t, r.ID)
		assert.NotNil(t, r.CommentReplies)
	}
}

func TestCourseFinders(t *testing.T) {
	c := Course{CourseData: []CourseContent{{Title: "intro"}, {Title: "next"}}}
	c.AssignContentIDs()

	id := c.CourseData[1].ID
	require.NoError(t, uuid.Validate(id))

	content := c.FindContent(id)
	require.NotNil(t, content)
	content.Questions = append(content.Questions, Question{ID: "q1", Question: "why?"})

	assert.Len(t, c.CourseData[1].Questions, 1, "FindContent returns a pointer into the course")
	assert.NotNil(t, c.CourseData[1].FindQuestion("q1"))
	assert.Nil(t, c.FindContent("nope"))

	r := c.AddReview(Review{Rating: 3})
	assert.Equal(t, r.ID, c.FindReview(r.ID).ID)
	assert.Nil(t, c.FindReview("nope"))
}

func TestCoursePublicStripsPurchaserFields(t *testing.T) {
	c := Course{Name: "Go", CourseData: []CourseContent{{
		ID:         "x",
		Title:      "intro",
		VideoURL:   "https://video",
		Suggestion: "read more",
		Links:      []Link{{Title: "docs", URL: "https://go.dev"}},
		Questions:  []Question{{ID: "q"}},
	}}}

	pub := c.Public()

	assert.Equal(t, "intro", pub.CourseData[0].Title)
	assert.Empty(t, pub.CourseData[0].VideoURL)
	assert.Empty(t, pub.CourseData[0].Suggestion)
	assert.Nil(t, pub.CourseData[0].Links)
	assert.Nil(t, pub.CourseData[0].Questions)

	assert.Equal(t, "https://video", c.CourseData[0].VideoURL, "original is untouched")
}

func TestLayoutTypeValid(t *testing.T) {
	assert.True(t, LayoutBanner.Valid())
	assert.True(t, LayoutFAQ.Valid())
	assert.True(t, LayoutCategories.Valid())
	assert.False(t, LayoutType("Footer").Valid())
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(uuid.NewString()))
	assert.False(t, IsValidID("12345"))
}
