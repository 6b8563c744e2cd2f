package student

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"college-portal/internal/apperrors"
	"college-portal/internal/course"
	"college-portal/web"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type mockStudentService struct {
	students []Student
	student  *Student
	err      error

	allCalled      bool
	receivedCourse int
	receivedNum    int
	addForm        StudentForm
	updateForm     StudentUpdateForm
}

func (m *mockStudentService) GetAllStudents(ctx context.Context) ([]Student, error) {
	m.allCalled = true
	return m.students, m.err
}

func (m *mockStudentService) GetStudentsByCourse(ctx context.Context, courseID int) ([]Student, error) {
	m.receivedCourse = courseID
	return m.students, m.err
}

func (m *mockStudentService) GetStudentByNum(ctx context.Context, num int) (*Student, error) {
	m.receivedNum = num
	return m.student, m.err
}

func (m *mockStudentService) AddStudent(ctx context.Context, form StudentForm) (*Student, error) {
	m.addForm = form
	return m.student, m.err
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, form StudentUpdateForm) (*Student, error) {
	m.updateForm = form
	return m.student, m.err
}

func (m *mockStudentService) DeleteStudentByNum(ctx context.Context, num int) error {
	m.receivedNum = num
	return m.err
}

type mockCourseLister struct {
	courses []course.Course
	err     error
}

func (m *mockCourseLister) GetCourses(ctx context.Context) ([]course.Course, error) {
	return m.courses, m.err
}

func setupStudentRouter(t *testing.T, svc StudentServiceAPI, courses CourseLister) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if err := web.Register(r); err != nil {
		t.Fatalf("register web assets: %v", err)
	}
	RegisterRoutes(r, svc, courses)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStudentController_GetStudents_All(t *testing.T) {
	svc := &mockStudentService{students: []Student{
		{StudentNum: 1, FirstName: strPtr("Ann"), LastName: strPtr("Lee"), Email: strPtr("ann@example.com")},
		{StudentNum: 2, FirstName: strPtr("Bob"), CourseID: intPtr(4)},
	}}
	r := setupStudentRouter(t, svc, &mockCourseLister{})

	w := get(r, "/students")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !svc.allCalled {
		t.Fatal("expected GetAllStudents to be used without a course filter")
	}
	body := w.Body.String()
	for _, want := range []string{"Ann Lee", "mailto:ann@example.com", `href="/student/2"`, `href="/course/4"`, `href="/student/delete/1"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestStudentController_GetStudents_ByCourse(t *testing.T) {
	svc := &mockStudentService{students: []Student{{StudentNum: 1, FirstName: strPtr("Ann"), CourseID: intPtr(3)}}}
	r := setupStudentRouter(t, svc, &mockCourseLister{})

	w := get(r, "/students?course=3")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.allCalled || svc.receivedCourse != 3 {
		t.Fatalf("expected course filter 3, all=%v course=%d", svc.allCalled, svc.receivedCourse)
	}
}

func TestStudentController_GetStudents_UnusableCourseListsAll(t *testing.T) {
	for _, path := range []string{"/students?course=web", "/students?course=0", "/students?course="} {
		t.Run(path, func(t *testing.T) {
			svc := &mockStudentService{students: []Student{{StudentNum: 1}}}
			r := setupStudentRouter(t, svc, &mockCourseLister{})

			w := get(r, path)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}
			if !svc.allCalled || svc.receivedCourse != 0 {
				t.Fatalf("expected all students, all=%v course=%d", svc.allCalled, svc.receivedCourse)
			}
		})
	}
}

func TestStudentController_GetStudents_EmptyAndErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no students",
			path:       "/students",
			err:        apperrors.EmptyResult("GetAllStudents"),
			wantStatus: http.StatusOK,
			wantBody:   "No students found",
		},
		{
			name:       "no students in course",
			path:       "/students?course=9",
			err:        apperrors.EmptyResult("GetStudentsByCourse"),
			wantStatus: http.StatusOK,
			wantBody:   "No students found for this course",
		},
		{
			name:       "store error",
			path:       "/students?course=9",
			err:        apperrors.StoreError("GetStudentsByCourse", "no results returned", errors.New("boom")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Error retrieving students",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupStudentRouter(t, &mockStudentService{err: tt.err}, &mockCourseLister{})

			w := get(r, tt.path)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("expected body to contain %q, got %s", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestStudentController_AddStudentForm_ListsCourses(t *testing.T) {
	courses := &mockCourseLister{courses: []course.Course{{ID: 1, CourseCode: strPtr("WEB700")}}}
	r := setupStudentRouter(t, &mockStudentService{}, courses)

	w := get(r, "/students/add")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `<option value="1">WEB700</option>`) {
		t.Fatalf("expected course option, got %s", w.Body.String())
	}
}

func TestStudentController_AddStudentForm_CourseFailureRendersEmptyList(t *testing.T) {
	courses := &mockCourseLister{err: apperrors.StoreError("GetCourses", "no results returned", errors.New("boom"))}
	r := setupStudentRouter(t, &mockStudentService{}, courses)

	w := get(r, "/students/add")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/students/add"`) {
		t.Fatalf("expected add form, got %s", w.Body.String())
	}
}

func TestStudentController_AddStudent_RedirectsToList(t *testing.T) {
	svc := &mockStudentService{student: &Student{StudentNum: 1}}
	r := setupStudentRouter(t, svc, &mockCourseLister{})

	w := postForm(r, "/students/add", url.Values{
		"firstName": {"Ann"},
		"lastName":  {"Lee"},
		"TA":        {""},
		"courseId":  {"1"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/students" {
		t.Fatalf("expected redirect to /students, got %q", loc)
	}
	if svc.addForm.FirstName != "Ann" || svc.addForm.LastName != "Lee" || svc.addForm.CourseID != "1" {
		t.Fatalf("unexpected form passed to service: %+v", svc.addForm)
	}
}

func TestStudentController_AddStudent_ServiceError(t *testing.T) {
	svc := &mockStudentService{err: apperrors.WriteFailure("AddStudent", "unable to create student", errors.New("boom"))}
	r := setupStudentRouter(t, svc, &mockCourseLister{})

	w := postForm(r, "/students/add", url.Values{"firstName": {"Ann"}})

	if w.Code != http.StatusInternalServerError || w.Body.String() != "Error adding student" {
		t.Fatalf("expected 500 Error adding student, got %d %q", w.Code, w.Body.String())
	}
}

func TestStudentController_GetStudent_PreselectsCourse(t *testing.T) {
	svc := &mockStudentService{student: &Student{StudentNum: 5, FirstName: strPtr("Ann"), TA: true, CourseID: intPtr(2)}}
	courses := &mockCourseLister{courses: []course.Course{
		{ID: 1, CourseCode: strPtr("WEB700")},
		{ID: 2, CourseCode: strPtr("BTI325")},
	}}
	r := setupStudentRouter(t, svc, courses)

	w := get(r, "/student/5")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<option value="2" selected>BTI325</option>`) {
		t.Fatalf("expected BTI325 pre-selected, got %s", body)
	}
	if !strings.Contains(body, `<option value="1">WEB700</option>`) {
		t.Fatalf("expected WEB700 unselected, got %s", body)
	}
	if !strings.Contains(body, `name="TA" checked`) {
		t.Fatalf("expected TA checkbox checked")
	}
	if svc.receivedNum != 5 {
		t.Fatalf("expected student 5, got %d", svc.receivedNum)
	}
}

func TestStudentController_GetStudent_CourseFailureStillRenders(t *testing.T) {
	svc := &mockStudentService{student: &Student{StudentNum: 5, FirstName: strPtr("Ann")}}
	courses := &mockCourseLister{err: apperrors.StoreError("GetCourses", "no results returned", errors.New("boom"))}
	r := setupStudentRouter(t, svc, courses)

	w := get(r, "/student/5")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="studentNum" value="5"`) {
		t.Fatalf("expected edit form, got %s", w.Body.String())
	}
}

func TestStudentController_GetStudent_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
	}{
		{name: "missing", path: "/student/999", err: apperrors.NotFound("GetStudentByNum", "no results returned")},
		{name: "store error", path: "/student/1", err: apperrors.StoreError("GetStudentByNum", "no results returned", errors.New("boom"))},
		{name: "non numeric", path: "/student/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupStudentRouter(t, &mockStudentService{err: tt.err}, &mockCourseLister{})

			w := get(r, tt.path)

			if w.Code != http.StatusNotFound || w.Body.String() != "Student Not Found" {
				t.Fatalf("expected 404 Student Not Found, got %d %q", w.Code, w.Body.String())
			}
		})
	}
}

func TestStudentController_UpdateStudent(t *testing.T) {
	t.Run("success redirects", func(t *testing.T) {
		svc := &mockStudentService{student: &Student{StudentNum: 5}}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := postForm(r, "/student/update", url.Values{
			"studentNum": {"5"},
			"firstName":  {"Annie"},
			"TA":         {"on"},
			"courseId":   {"2"},
		})

		if w.Code != http.StatusFound || w.Header().Get("Location") != "/students" {
			t.Fatalf("expected 302 to /students, got %d %q", w.Code, w.Header().Get("Location"))
		}
		if svc.updateForm.StudentNum != "5" || svc.updateForm.FirstName != "Annie" || svc.updateForm.TA != "on" {
			t.Fatalf("unexpected form passed to service: %+v", svc.updateForm)
		}
	})

	t.Run("missing studentNum", func(t *testing.T) {
		r := setupStudentRouter(t, &mockStudentService{}, &mockCourseLister{})

		w := postForm(r, "/student/update", url.Values{"firstName": {"Annie"}})

		if w.Code != http.StatusInternalServerError || w.Body.String() != "Error updating student" {
			t.Fatalf("expected 500 Error updating student, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mockStudentService{err: apperrors.WriteFailure("UpdateStudent", "unable to update student", errors.New("boom"))}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := postForm(r, "/student/update", url.Values{"studentNum": {"999"}})

		if w.Code != http.StatusInternalServerError || w.Body.String() != "Error updating student" {
			t.Fatalf("expected 500 Error updating student, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestStudentController_DeleteStudent(t *testing.T) {
	t.Run("success redirects", func(t *testing.T) {
		svc := &mockStudentService{}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := get(r, "/student/delete/5")

		if w.Code != http.StatusFound || w.Header().Get("Location") != "/students" {
			t.Fatalf("expected 302 to /students, got %d %q", w.Code, w.Header().Get("Location"))
		}
		if svc.receivedNum != 5 {
			t.Fatalf("expected student 5, got %d", svc.receivedNum)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockStudentService{err: apperrors.NotFound("DeleteStudentByNum", "student not found")}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := get(r, "/student/delete/999")

		if w.Code != http.StatusInternalServerError || w.Body.String() != "Unable to Remove Student / Student not found" {
			t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
		}
	})
}

func TestStudentController_ExportStudents(t *testing.T) {
	t.Run("workbook download", func(t *testing.T) {
		svc := &mockStudentService{students: []Student{{StudentNum: 1, FirstName: strPtr("Ann")}}}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := get(r, "/students/export")

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "students.xlsx") {
			t.Fatalf("unexpected content disposition %q", cd)
		}

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		if err != nil {
			t.Fatalf("open workbook: %v", err)
		}
		defer f.Close()
		rows, err := f.GetRows(exportSheet)
		if err != nil {
			t.Fatalf("get rows: %v", err)
		}
		if len(rows) != 2 || rows[1][1] != "Ann" {
			t.Fatalf("unexpected rows: %v", rows)
		}
	})

	t.Run("no students still downloads", func(t *testing.T) {
		r := setupStudentRouter(t, &mockStudentService{err: apperrors.EmptyResult("GetAllStudents")}, &mockCourseLister{})

		w := get(r, "/students/export")

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
	})

	t.Run("store error", func(t *testing.T) {
		svc := &mockStudentService{err: apperrors.StoreError("GetAllStudents", "no results returned", errors.New("boom"))}
		r := setupStudentRouter(t, svc, &mockCourseLister{})

		w := get(r, "/students/export")

		if w.Code != http.StatusInternalServerError || w.Body.String() != "Error exporting students" {
			t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
		}
	})
}
