package student

import (
	"context"

	"college-portal/internal/course"
)

type StudentServiceAPI interface {
	GetAllStudents(ctx context.Context) ([]Student, error)
	GetStudentsByCourse(ctx context.Context, courseID int) ([]Student, error)
	GetStudentByNum(ctx context.Context, num int) (*Student, error)
	AddStudent(ctx context.Context, form StudentForm) (*Student, error)
	UpdateStudent(ctx context.Context, form StudentUpdateForm) (*Student, error)
	DeleteStudentByNum(ctx context.Context, num int) error
}

// CourseLister is the slice of the course service the student pages need
// to fill their course dropdowns.
type CourseLister interface {
	GetCourses(ctx context.Context) ([]course.Course, error)
}

var (
	_ StudentServiceAPI = (*StudentService)(nil)
	_ CourseLister      = (*course.CourseService)(nil)
)
