package student

import (
	"context"
	"errors"

	"college-portal/internal/apperrors"
	"college-portal/internal/logger"

	"gorm.io/gorm"
)

var (
	errMissingStudentNum = errors.New("studentNum is required")
	errNoStudentRows     = errors.New("no student rows affected")
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (ss *StudentService) GetAllStudents(ctx context.Context) ([]Student, error) {
	var students []Student
	if err := ss.DB.WithContext(ctx).Order("student_num ASC").Find(&students).Error; err != nil {
		logger.Error().Err(err).Str("op", "GetAllStudents").Msg("Error fetching students")
		return nil, apperrors.StoreError("GetAllStudents", "no results returned", err)
	}
	if len(students) == 0 {
		return nil, apperrors.EmptyResult("GetAllStudents")
	}
	return students, nil
}

func (ss *StudentService) GetStudentsByCourse(ctx context.Context, courseID int) ([]Student, error) {
	var students []Student
	err := ss.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("student_num ASC").
		Find(&students).Error
	if err != nil {
		logger.Error().Err(err).Str("op", "GetStudentsByCourse").Int("course_id", courseID).Msg("Error fetching students by course")
		return nil, apperrors.StoreError("GetStudentsByCourse", "no results returned", err)
	}
	if len(students) == 0 {
		return nil, apperrors.EmptyResult("GetStudentsByCourse")
	}
	return students, nil
}

func (ss *StudentService) GetStudentByNum(ctx context.Context, num int) (*Student, error) {
	var s Student
	err := ss.DB.WithContext(ctx).Where("student_num = ?", num).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("GetStudentByNum", "no results returned")
		}
		logger.Error().Err(err).Str("op", "GetStudentByNum").Int("student_num", num).Msg("Error fetching student")
		return nil, apperrors.StoreError("GetStudentByNum", "no results returned", err)
	}
	return &s, nil
}

func (ss *StudentService) AddStudent(ctx context.Context, form StudentForm) (*Student, error) {
	s, err := form.ToStudent()
	if err != nil {
		logger.Error().Err(err).Str("op", "AddStudent").Str("course_id", form.CourseID).Msg("Invalid student form")
		return nil, apperrors.WriteFailure("AddStudent", "unable to create student", err)
	}

	if err := ss.DB.WithContext(ctx).Create(&s).Error; err != nil {
		logger.Error().Err(err).Str("op", "AddStudent").Msg("Error creating student")
		return nil, apperrors.WriteFailure("AddStudent", "unable to create student", err)
	}

	logger.Info().Int("student_num", s.StudentNum).Msg("Student created")
	return &s, nil
}

func (ss *StudentService) UpdateStudent(ctx context.Context, form StudentUpdateForm) (*Student, error) {
	s, err := form.ToStudent()
	if err != nil {
		logger.Error().Err(err).Str("op", "UpdateStudent").Str("student_num", form.StudentNum).Msg("Invalid student form")
		return nil, apperrors.WriteFailure("UpdateStudent", "unable to update student", err)
	}

	result := ss.DB.WithContext(ctx).
		Model(&Student{}).
		Where("student_num = ?", s.StudentNum).
		Updates(s.updateColumns())
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("op", "UpdateStudent").Int("student_num", s.StudentNum).Msg("Error updating student")
		return nil, apperrors.WriteFailure("UpdateStudent", "unable to update student", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn().Str("op", "UpdateStudent").Int("student_num", s.StudentNum).Msg("No student matched update")
		return nil, apperrors.WriteFailure("UpdateStudent", "unable to update student", errNoStudentRows)
	}
	return &s, nil
}

func (ss *StudentService) DeleteStudentByNum(ctx context.Context, num int) error {
	result := ss.DB.WithContext(ctx).Where("student_num = ?", num).Delete(&Student{})
	if result.Error != nil {
		logger.Error().Err(result.Error).Str("op", "DeleteStudentByNum").Int("student_num", num).Msg("Error deleting student")
		return apperrors.WriteFailure("DeleteStudentByNum", "unable to delete student", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("DeleteStudentByNum", "student not found")
	}

	logger.Info().Int("student_num", num).Msg("Student deleted")
	return nil
}
