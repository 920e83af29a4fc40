package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateRoadmapRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=5000"`
	CategoryID  uint   `json:"category_id" validate:"required"`
}

type UpdateRoadmapRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *uint   `json:"category_id"`
	Achieved    *bool   `json:"achieved"`
}

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=5000"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	RoadmapID   uint   `json:"roadmap_id" validate:"required"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	CategoryID  *uint   `json:"category_id"`
}

type AddLessonRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=255"`
	Content string `json:"content"`
}

type UpdateLessonRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=3,max=255"`
	Content *string `json:"content"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type RecordProgressRequest struct {
	LessonID uint `json:"lesson_id" validate:"required"`
}

// Validate checks a request struct and returns per-field messages, or nil
// when the struct is valid.
func Validate(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "is invalid"
	}
}
