package student

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"college-portal/internal/apperrors"
	"college-portal/internal/course"
	"college-portal/internal/logger"
	"college-portal/web"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StudentController struct {
	StudentService StudentServiceAPI
	CourseService  CourseLister
}

// GET /students?course=
func (sc *StudentController) GetStudents(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		students []Student
		err      error
		empty    = "No students found"
	)
	// course=0 and unparsable values list every student.
	if courseID, convErr := strconv.Atoi(strings.TrimSpace(c.Query("course"))); convErr == nil && courseID != 0 {
		students, err = sc.StudentService.GetStudentsByCourse(ctx, courseID)
		empty = "No students found for this course"
	} else {
		students, err = sc.StudentService.GetAllStudents(ctx)
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyResult) {
			web.HTML(c, http.StatusOK, "students", gin.H{"students": []Student{}, "message": empty})
			return
		}
		logger.Error().Err(err).Str("course", c.Query("course")).Msg("Error retrieving students")
		web.HTML(c, http.StatusInternalServerError, "students", gin.H{"message": "Error retrieving students"})
		return
	}

	web.HTML(c, http.StatusOK, "students", gin.H{"students": students})
}

// GET /students/add
func (sc *StudentController) AddStudentForm(c *gin.Context) {
	web.HTML(c, http.StatusOK, "addStudent", gin.H{"courses": sc.listCourses(c)})
}

// POST /students/add
func (sc *StudentController) AddStudent(c *gin.Context) {
	var form StudentForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Error().Err(err).Msg("Error adding student")
		c.String(http.StatusInternalServerError, "Error adding student")
		return
	}

	if _, err := sc.StudentService.AddStudent(c.Request.Context(), form); err != nil {
		logger.Error().Err(err).Msg("Error adding student")
		c.String(http.StatusInternalServerError, "Error adding student")
		return
	}

	c.Redirect(http.StatusFound, "/students")
}

// GET /students/export
func (sc *StudentController) ExportStudents(c *gin.Context) {
	students, err := sc.StudentService.GetAllStudents(c.Request.Context())
	if err != nil && !errors.Is(err, apperrors.ErrEmptyResult) {
		logger.Error().Err(err).Msg("Error exporting students")
		c.String(http.StatusInternalServerError, "Error exporting students")
		return
	}

	data, err := BuildStudentWorkbook(students)
	if err != nil {
		logger.Error().Err(err).Msg("Error building student workbook")
		c.String(http.StatusInternalServerError, "Error exporting students")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GET /student/:studentNum
func (sc *StudentController) GetStudent(c *gin.Context) {
	num, err := strconv.Atoi(strings.TrimSpace(c.Param("studentNum")))
	if err != nil {
		c.String(http.StatusNotFound, "Student Not Found")
		return
	}

	found, err := sc.StudentService.GetStudentByNum(c.Request.Context(), num)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error().Err(err).Int("student_num", num).Msg("Error retrieving student")
		}
		c.String(http.StatusNotFound, "Student Not Found")
		return
	}

	web.HTML(c, http.StatusOK, "student", gin.H{
		"student": found,
		"courses": courseOptions(sc.listCourses(c), found.CourseID),
	})
}

// POST /student/update
func (sc *StudentController) UpdateStudent(c *gin.Context) {
	var form StudentUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Error().Err(err).Msg("Error updating student")
		c.String(http.StatusInternalServerError, "Error updating student")
		return
	}

	if _, err := sc.StudentService.UpdateStudent(c.Request.Context(), form); err != nil {
		logger.Error().Err(err).Str("student_num", form.StudentNum).Msg("Error updating student")
		c.String(http.StatusInternalServerError, "Error updating student")
		return
	}

	c.Redirect(http.StatusFound, "/students")
}

// GET /student/delete/:studentNum
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	num, err := strconv.Atoi(strings.TrimSpace(c.Param("studentNum")))
	if err == nil {
		err = sc.StudentService.DeleteStudentByNum(c.Request.Context(), num)
	}
	if err != nil {
		logger.Error().Err(err).Str("student_num", c.Param("studentNum")).Msg("Error deleting student")
		c.String(http.StatusInternalServerError, "Unable to Remove Student / Student not found")
		return
	}

	c.Redirect(http.StatusFound, "/students")
}

// listCourses feeds the course dropdowns; a failed lookup leaves them empty.
func (sc *StudentController) listCourses(c *gin.Context) []course.Course {
	courses, err := sc.CourseService.GetCourses(c.Request.Context())
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmptyResult) {
			logger.Warn().Err(err).Msg("Error retrieving courses for student form")
		}
		return []course.Course{}
	}
	return courses
}
