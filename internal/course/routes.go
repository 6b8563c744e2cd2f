package course

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, courseService CourseServiceAPI) {
	courseController := &CourseController{CourseService: courseService}

	r.GET("/courses", courseController.GetCourses)
	r.GET("/courses/add", courseController.AddCourseForm)
	r.POST("/courses/add", courseController.AddCourse)

	courseGroup := r.Group("/course")
	{
		courseGroup.GET("/:id", courseController.GetCourse)
		courseGroup.POST("/update", courseController.UpdateCourse)
		courseGroup.GET("/delete/:id", courseController.DeleteCourse)
	}
}
