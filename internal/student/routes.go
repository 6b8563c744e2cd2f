package student

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, studentService StudentServiceAPI, courseService CourseLister) {
	studentController := &StudentController{
		StudentService: studentService,
		CourseService:  courseService,
	}

	r.GET("/students", studentController.GetStudents)
	r.GET("/students/add", studentController.AddStudentForm)
	r.POST("/students/add", studentController.AddStudent)
	r.GET("/students/export", studentController.ExportStudents)

	studentGroup := r.Group("/student")
	{
		studentGroup.GET("/:studentNum", studentController.GetStudent)
		studentGroup.POST("/update", studentController.UpdateStudent)
		studentGroup.GET("/delete/:studentNum", studentController.DeleteStudent)
	}
}
