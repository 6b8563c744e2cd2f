package course

import "context"

type CourseServiceAPI interface {
	GetCourses(ctx context.Context) ([]Course, error)
	GetCourseByID(ctx context.Context, id int) (*Course, error)
	AddCourse(ctx context.Context, form CourseForm) (*Course, error)
	UpdateCourse(ctx context.Context, form CourseUpdateForm) (*Course, error)
	DeleteCourseByID(ctx context.Context, id int) error
}

var _ CourseServiceAPI = (*CourseService)(nil)
