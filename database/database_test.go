package database

import (
	"elearning/config"
	"elearning/models"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(&config.Config{DBDriver: "sqlite", DBDSN: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestConnectMigrates(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []any{&models.User{}, &models.Course{}, &models.Order{}, &models.Notification{}, &models.Layout{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestUniqueEmailTranslatesToDuplicatedKey(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&models.User{Name: "a", Email: "a@example.com"}).Error)
	err := db.Create(&models.User{Name: "b", Email: "a@example.com"}).Error

	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestNestedDocumentsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	course := models.Course{
		Name:        "Go",
		Description: "Learn Go",
		Price:       10,
		CourseData:  []models.CourseContent{{Title: "intro", VideoURL: "v"}},
	}
	course.AssignContentIDs()
	course.AddReview(models.Review{Rating: 4, Comment: "good"})
	require.NoError(t, db.Create(&course).Error)
	assert.NotEmpty(t, course.ID)

	var loaded models.Course
	require.NoError(t, db.First(&loaded, "id = ?", course.ID).Error)

	require.Len(t, loaded.CourseData, 1)
	assert.Equal(t, "v", loaded.CourseData[0].VideoURL)
	require.Len(t, loaded.Reviews, 1)
	assert.Equal(t, 4.0, loaded.Ratings)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unsupported driver")
}
