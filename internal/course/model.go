package course

import (
	"college-portal/internal/util"
)

type Course struct {
	ID                int     `gorm:"primaryKey;autoIncrement;column:course_id" json:"courseId"`
	CourseCode        *string `gorm:"size:255;column:course_code" json:"courseCode"`
	CourseDescription *string `gorm:"size:255;column:course_description" json:"courseDescription"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseForm is the add-course form as submitted.
type CourseForm struct {
	CourseCode        string `form:"courseCode"`
	CourseDescription string `form:"courseDescription"`
}

// CourseUpdateForm is the edit form; it must identify the course.
type CourseUpdateForm struct {
	CourseID string `form:"courseId" binding:"required"`
	CourseForm
}

func (f CourseForm) ToCourse() Course {
	return Course{
		CourseCode:        util.NullIfEmpty(f.CourseCode),
		CourseDescription: util.NullIfEmpty(f.CourseDescription),
	}
}

func (f CourseUpdateForm) ToCourse() (Course, error) {
	id, err := util.ParseNullableInt(f.CourseID)
	if err != nil {
		return Course{}, err
	}
	if id == nil {
		return Course{}, errMissingCourseID
	}

	c := f.CourseForm.ToCourse()
	c.ID = *id
	return c, nil
}

func (c Course) updateColumns() map[string]any {
	return map[string]any{
		"course_code":        c.CourseCode,
		"course_description": c.CourseDescription,
	}
}
