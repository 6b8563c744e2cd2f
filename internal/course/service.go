package course

import (
	"context"
	"errors"

	"college-portal/internal/apperrors"
	"college-portal/internal/logger"

	"gorm.io/gorm"
)

var (
	errMissingCourseID = errors.New("courseId is required")
	errNoCourseRows    = errors.New("no course rows affected")
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

func (cs *CourseService) GetCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := cs.DB.WithContext(ctx).Order("course_id ASC").Find(&courses).Error; err != nil {
		logger.Error().Err(err).Str("op", "GetCourses").Msg("Error fetching courses")
		return nil, apperrors.StoreError("GetCourses", "no results returned", err)
	}
	if len(courses) == 0 {
		return nil, apperrors.EmptyResult("GetCourses")
	}
	return courses, nil
}

func (cs *CourseService) GetCourseByID(ctx context.Context, id int) (*Course, error) {
	var c Course
	err := cs.DB.WithContext(ctx).Where("course_id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("GetCourseByID", "no results returned")
		}
		logger.Error().Err(err).Str("op", "GetCourseByID").Int("course_id", id).Msg("Error fetching course by ID")
		return nil, apperrors.StoreError("GetCourseByID", "no results returned", err)
	}
	return &c, nil
}

func (cs *CourseService) AddCourse(ctx context.Context, form CourseForm) (*Course, error) {
	c := form.ToCourse()
	if err := cs.DB.WithContext(ctx).Create(&c).Error; err != nil {
		logger.Error().Err(err).Str("op", "AddCourse").Msg("Error creating course")
		return nil, apperrors.WriteFailure("AddCourse", "unable to create course", err)
	}
	return &c, nil
}

func (cs *CourseService) UpdateCourse(ctx context.Context, form CourseUpdateForm) (*Course, error) {
	c, err := form.ToCourse()
	if err != nil {
		logger.Error().Err(err).Str("op", "UpdateCourse").Str("course_id", form.CourseID).Msg("Error updating course")
		return nil, apperrors.WriteFailure("UpdateCourse", "unable to update course", err)
	}

	result := cs.DB.WithContext(ctx).
		Model(&Course{}).
		Where("course_id = ?", c.ID).
		Updates(c.updateColumns())
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("op", "UpdateCourse").Int("course_id", c.ID).Msg("Error updating course")
		return nil, apperrors.WriteFailure("UpdateCourse", "unable to update course", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn().Str("op", "UpdateCourse").Int("course_id", c.ID).Msg("No course matched update")
		return nil, apperrors.WriteFailure("UpdateCourse", "unable to update course", errNoCourseRows)
	}
	return &c, nil
}

// DeleteCourseByID removes the course and detaches its students in one
// transaction; students keep existing with a NULL course_id.
func (cs *CourseService) DeleteCourseByID(ctx context.Context, id int) error {
	err := cs.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("students").Where("course_id = ?", id).Update("course_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("course_id = ?", id).Delete(&Course{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNoCourseRows
		}
		return nil
	})

	if errors.Is(err, errNoCourseRows) {
		return apperrors.NotFound("DeleteCourseByID", "course not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("op", "DeleteCourseByID").Int("course_id", id).Msg("Error deleting course")
		return apperrors.WriteFailure("DeleteCourseByID", "unable to delete course", err)
	}

	logger.Info().Int("course_id", id).Msg("Course deleted")
	return nil
}
