package http

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// Validator is implemented by request DTOs with rules beyond binding tags.
type Validator interface {
	Validate() error
}

var jsonNamesOnce sync.Once

// useJSONFieldNames makes binding errors name fields the way clients send them.
func useJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// BuildRequest decodes the JSON body into a T and runs its binding tags.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	useJSONFieldNames()
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// bindingError turns failed binding tags into a ValidationError, or nil for
// malformed JSON.
func bindingError(err error) *dto.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return &dto.ValidationError{
		Field:   fieldErrs[0].Field(),
		Message: "failed " + fieldErrs[0].Tag() + " check",
		Details: details,
	}
}

// bind decodes and validates the request body. It writes the error response and returns false on failure.
func bind[T any](c *gin.Context) (*T, bool) {
	req, err := BuildRequest[T](c)
	if err != nil {
		if verr := bindingError(err); verr != nil {
			NewResponseBuilder(c).ValidationFailed(verr)
			return nil, false
		}
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			fail(c, err)
			return nil, false
		}
	}
	return req, true
}
