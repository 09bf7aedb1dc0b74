package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`
	ErrorText      string `json:"error,omitempty"`
	RedirectURL    string `json:"redirect,omitempty"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request.",
		ErrorText:      err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorText:      fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
		ErrorText:      err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     "Permission denied.",
		ErrorText:      err.Error(),
	}
}

// ErrCampFull carries the waitlist redirect signal instead of a plain
// inline error.
func ErrCampFull(waitlistURL string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Camp is full.",
		ErrorText:      "no spots left for this camp",
		RedirectURL:    waitlistURL,
	}
}

// ErrInternalServerError logs the internal detail and keeps the
// response message generic outside debug mode.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	e := &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
	}
	if gin.Mode() == gin.DebugMode {
		e.ErrorText = err.Error()
	}

	return e
}

func ErrBadGateway(err error) *Err {
	zap.L().Error("upstream error", zap.Error(err))

	e := &Err{
		HTTPStatusCode: http.StatusBadGateway,
		StatusText:     "Upstream provider error.",
	}
	if gin.Mode() == gin.DebugMode {
		e.ErrorText = err.Error()
	}

	return e
}
