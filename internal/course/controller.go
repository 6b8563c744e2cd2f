package course

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"college-portal/internal/apperrors"
	"college-portal/internal/logger"
	"college-portal/web"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService CourseServiceAPI
}

// GET /courses
func (cc *CourseController) GetCourses(c *gin.Context) {
	courses, err := cc.CourseService.GetCourses(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyResult) {
			web.HTML(c, http.StatusOK, "courses", gin.H{"courses": []Course{}, "message": "No courses found"})
			return
		}
		logger.Error().Err(err).Msg("Error retrieving courses")
		web.HTML(c, http.StatusInternalServerError, "courses", gin.H{"message": "Error retrieving courses"})
		return
	}

	web.HTML(c, http.StatusOK, "courses", gin.H{"courses": courses})
}

// GET /course/:id
func (cc *CourseController) GetCourse(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		web.HTML(c, http.StatusNotFound, "course", gin.H{"message": "Course not found"})
		return
	}

	found, err := cc.CourseService.GetCourseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			web.HTML(c, http.StatusNotFound, "course", gin.H{"message": "Course not found"})
			return
		}
		logger.Error().Err(err).Int("course_id", id).Msg("Error retrieving course")
		web.HTML(c, http.StatusInternalServerError, "course", gin.H{"message": "Error retrieving course"})
		return
	}

	web.HTML(c, http.StatusOK, "course", gin.H{"course": found})
}

// GET /courses/add
func (cc *CourseController) AddCourseForm(c *gin.Context) {
	web.HTML(c, http.StatusOK, "addCourse", nil)
}

// POST /courses/add
func (cc *CourseController) AddCourse(c *gin.Context) {
	var form CourseForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Error().Err(err).Msg("Error adding course")
		c.String(http.StatusInternalServerError, "Error adding course")
		return
	}

	if _, err := cc.CourseService.AddCourse(c.Request.Context(), form); err != nil {
		logger.Error().Err(err).Msg("Error adding course")
		c.String(http.StatusInternalServerError, "Error adding course")
		return
	}

	c.Redirect(http.StatusFound, "/courses")
}

// POST /course/update
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	var form CourseUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Error().Err(err).Msg("Error updating course")
		c.String(http.StatusInternalServerError, "Error updating course")
		return
	}

	if _, err := cc.CourseService.UpdateCourse(c.Request.Context(), form); err != nil {
		logger.Error().Err(err).Str("course_id", form.CourseID).Msg("Error updating course")
		c.String(http.StatusInternalServerError, "Error updating course")
		return
	}

	c.Redirect(http.StatusFound, "/courses")
}

// GET /course/delete/:id
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err == nil {
		err = cc.CourseService.DeleteCourseByID(c.Request.Context(), id)
	}
	if err != nil {
		logger.Error().Err(err).Str("course_id", c.Param("id")).Msg("Error deleting course")
		c.String(http.StatusInternalServerError, "Unable to Remove Course / Course not found")
		return
	}

	c.Redirect(http.StatusFound, "/courses")
}
