package student

import (
	"college-portal/internal/course"
	"college-portal/internal/util"
)

type Student struct {
	StudentNum      int            `gorm:"primaryKey;autoIncrement;column:student_num" json:"studentNum"`
	FirstName       *string        `gorm:"size:255;column:first_name" json:"firstName"`
	LastName        *string        `gorm:"size:255;column:last_name" json:"lastName"`
	Email           *string        `gorm:"size:255;column:email" json:"email"`
	AddressStreet   *string        `gorm:"size:255;column:address_street" json:"addressStreet"`
	AddressCity     *string        `gorm:"size:255;column:address_city" json:"addressCity"`
	AddressProvince *string        `gorm:"size:255;column:address_province" json:"addressProvince"`
	TA              bool           `gorm:"column:ta;not null;default:false" json:"TA"`
	Status          *string        `gorm:"size:255;column:status" json:"status"`
	CourseID        *int           `gorm:"column:course_id;index" json:"courseId"`
	Course          *course.Course `gorm:"foreignKey:CourseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// StudentForm is the add-student form as submitted. TA arrives as a
// checkbox value and courseId as the selected option's value.
type StudentForm struct {
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Email           string `form:"email"`
	AddressStreet   string `form:"addressStreet"`
	AddressCity     string `form:"addressCity"`
	AddressProvince string `form:"addressProvince"`
	TA              string `form:"TA"`
	Status          string `form:"status"`
	CourseID        string `form:"courseId"`
}

type StudentUpdateForm struct {
	StudentNum string `form:"studentNum" binding:"required"`
	StudentForm
}

// CourseOption is a course as offered in the student edit form.
type CourseOption struct {
	course.Course
	Selected bool
}

func (f StudentForm) ToStudent() (Student, error) {
	courseID, err := util.ParseNullableInt(f.CourseID)
	if err != nil {
		return Student{}, err
	}

	return Student{
		FirstName:       util.NullIfEmpty(f.FirstName),
		LastName:        util.NullIfEmpty(f.LastName),
		Email:           util.NullIfEmpty(f.Email),
		AddressStreet:   util.NullIfEmpty(f.AddressStreet),
		AddressCity:     util.NullIfEmpty(f.AddressCity),
		AddressProvince: util.NullIfEmpty(f.AddressProvince),
		TA:              util.Truthy(f.TA),
		Status:          util.NullIfEmpty(f.Status),
		CourseID:        courseID,
	}, nil
}

func (f StudentUpdateForm) ToStudent() (Student, error) {
	num, err := util.ParseNullableInt(f.StudentNum)
	if err != nil {
		return Student{}, err
	}
	if num == nil {
		return Student{}, errMissingStudentNum
	}

	s, err := f.StudentForm.ToStudent()
	if err != nil {
		return Student{}, err
	}
	s.StudentNum = *num
	return s, nil
}

func (s Student) updateColumns() map[string]any {
	return map[string]any{
		"first_name":       s.FirstName,
		"last_name":        s.LastName,
		"email":            s.Email,
		"address_street":   s.AddressStreet,
		"address_city":     s.AddressCity,
		"address_province": s.AddressProvince,
		"ta":               s.TA,
		"status":           s.Status,
		"course_id":        s.CourseID,
	}
}

// courseOptions flags the course the student is enrolled in.
func courseOptions(courses []course.Course, selected *int) []CourseOption {
	options := make([]CourseOption, 0, len(courses))
	for _, c := range courses {
		options = append(options, CourseOption{
			Course:   c,
			Selected: selected != nil && *selected == c.ID,
		})
	}
	return options
}
