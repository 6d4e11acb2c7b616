package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"Folks_Community/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type envelopeContent struct {
	Meta any `json:"meta,omitempty"`
	Data any `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"content": envelopeContent{Data: data},
	})
}

func OKWithMeta(c *gin.Context, data, meta any) {
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"content": envelopeContent{Data: data, Meta: meta},
	})
}

// OKEmpty acknowledges success with no content, as member removal does.
func OKEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": true})
}

func Fail(c *gin.Context, errs ...*pkg.Error) {
	c.JSON(statusForCode(errs[0].Code), gin.H{
		"status": false,
		"errors": errs,
	})
}

// FailErr renders a domain error, or masks and logs anything unexpected.
func FailErr(c *gin.Context, err error) {
	var apiErr *pkg.Error
	if errors.As(err, &apiErr) {
		Fail(c, apiErr)
		return
	}
	slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	Fail(c, pkg.Internal())
}

func statusForCode(code string) int {
	switch code {
	case pkg.CodeNotSignedIn, pkg.CodeNotAllowedAccess:
		return http.StatusUnauthorized
	case pkg.CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// bindingErrors turns validator failures into one envelope entry per
// offending field.
func bindingErrors(err error) []*pkg.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*pkg.Error{pkg.InvalidInput("", "Invalid request body.")}
	}
	out := make([]*pkg.Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, pkg.InvalidInput(strings.ToLower(fe.Field()), fieldMessage(fe)))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Please provide a valid email address."
	case "min":
		return fmt.Sprintf("%s should be at least %s characters.", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
