package utils

import (
	"context"
	"elearning/cache"
	"elearning/models"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportResult counts what ImportCourses did with each CSV row.
type ImportResult struct {
	Inserted   int
	Updated    int
	Skipped    int
	UpdatedIDs []string
}

func (r ImportResult) Total() int { return r.Inserted + r.Updated + r.Skipped }

// StaleCacheKeys lists the cached views the import made stale: the course
// list and every updated course.
func (r ImportResult) StaleCacheKeys() []string {
	keys := []string{cache.AllCoursesKey}
	for _, id := range r.UpdatedIDs {
		keys = append(keys, cache.CourseKey(id))
	}
	return keys
}

// ImportCourses upserts catalog entries from CSV, matching existing courses
// by name. Columns: name, description, categories, price, estimatedPrice,
// tags, level, demoUrl, benefits and prerequisites ("|" separated titles).
// Content items, reviews and counters of existing courses are left alone.
func ImportCourses(ctx context.Context, db *gorm.DB, r io.Reader) (ImportResult, error) {
	var res ImportResult

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return res, fmt.Errorf("import: read csv: %w", err)
	}
	if len(records) < 2 {
		return res, errors.New("import: csv file is empty or has only headers")
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	tx := db.WithContext(ctx)
	for _, row := range records[1:] {
		course := courseFromRow(row, headerIndex)

		// name and description are required on every course
		if course.Name == "" || course.Description == "" {
			res.Skipped++
			continue
		}

		var existing models.Course
		err := tx.Where("name = ?", course.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			course.Reviews = datatypes.JSONSlice[models.Review]{}
			course.CourseData = datatypes.JSONSlice[models.CourseContent]{}
			if err := tx.Create(&course).Error; err != nil {
				return res, fmt.Errorf("import: insert %q: %w", course.Name, err)
			}
			res.Inserted++
			continue
		}
		if err != nil {
			return res, err
		}

		existing.Description = course.Description
		existing.Categories = course.Categories
		existing.Price = course.Price
		existing.EstimatedPrice = course.EstimatedPrice
		existing.Tags = course.Tags
		existing.Level = course.Level
		existing.DemoURL = course.DemoURL
		existing.Benefits = course.Benefits
		existing.Prerequisites = course.Prerequisites
		if err := tx.Save(&existing).Error; err != nil {
			return res, fmt.Errorf("import: update %q: %w", course.Name, err)
		}
		res.Updated++
		res.UpdatedIDs = append(res.UpdatedIDs, existing.ID)
	}

	return res, nil
}

func courseFromRow(row []string, headerIndex map[string]int) models.Course {
	return models.Course{
		Name:           getField(row, headerIndex, "name"),
		Description:    getField(row, headerIndex, "description"),
		Categories:     getField(row, headerIndex, "categories"),
		Price:          parseFloat(getField(row, headerIndex, "price")),
		EstimatedPrice: parseFloat(getField(row, headerIndex, "estimatedPrice")),
		Tags:           getField(row, headerIndex, "tags"),
		Level:          getField(row, headerIndex, "level"),
		DemoURL:        getField(row, headerIndex, "demoUrl"),
		Benefits:       titles(getField(row, headerIndex, "benefits")),
		Prerequisites:  titles(getField(row, headerIndex, "prerequisites")),
	}
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

func titles(s string) datatypes.JSONSlice[models.Title] {
	out := datatypes.JSONSlice[models.Title]{}
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.Title{Title: part})
		}
	}
	return out
}
