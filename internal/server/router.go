package server

import (
	"college-portal/config"
	"college-portal/internal/course"
	"college-portal/internal/middlewares"
	"college-portal/internal/pages"
	"college-portal/internal/student"
	"college-portal/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the services onto db and registers every route.
func NewRouter(cfg config.Config, db *gorm.DB) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.ActiveRoute())
	if len(cfg.CORSOrigins) > 0 {
		r.Use(middlewares.CORS(cfg.CORSOrigins))
	}

	if err := web.Register(r); err != nil {
		return nil, err
	}

	courseService := course.NewCourseService(db)
	course.RegisterRoutes(r, courseService)

	studentService := student.NewStudentService(db)
	student.RegisterRoutes(r, studentService, courseService)

	pages.RegisterRoutes(r)

	return r, nil
}
