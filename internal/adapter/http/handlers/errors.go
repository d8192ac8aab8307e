package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"romaneio_api/internal/adapter/http/middleware"
	"romaneio_api/internal/domain/domainerr"
	"romaneio_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidBody = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errInvalidID   = pkg.NewDomainErrorSimple("INVALID_ID", "id must be a positive integer", http.StatusBadRequest)

	jsonNamesOnce sync.Once
)

// mapDomainError translates use-case errors into the HTTP envelope.
func mapDomainError(err error) *pkg.AppError {
	var (
		notFound   *domainerr.NotFoundError
		conflict   *domainerr.ConflictError
		validation *domainerr.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Message, err, http.StatusNotFound)
	case errors.As(err, &conflict):
		return pkg.NewDomainError("CONFLICT", conflict.Message, err, http.StatusConflict)
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_ERROR", validation.Message, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] unexpected error request_id=%s method=%s path=%s err=%v",
			middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPErrorAt(c.Request.URL.Path))
}

func respondDomainError(c *gin.Context, err error) {
	respondError(c, mapDomainError(err))
}

// bindJSON binds the body into dst and writes a 400 envelope when it fails.
func bindJSON(c *gin.Context, dst any) bool {
	jsonNamesOnce.Do(useJSONFieldNames)
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, bindingError(err))
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, errInvalidID)
		return 0, false
	}
	return id, true
}

func bindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidBody
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldMessage(fe))
	}
	return pkg.NewValidationErrors(details)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// useJSONFieldNames makes validation errors report json names instead of Go field names.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}
