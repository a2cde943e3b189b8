package response

import (
	"errors"
	"net/http"

	"Scoops/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// BizError carries an explicit HTTP status chosen by a handler.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

const internalMsg = "internal server error"

// StatusOf maps an error to the status and message sent to the client.
// Internal failures never leak their detail.
func StatusOf(err error) (int, string) {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code, be.Msg
	}

	var e *errorx.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, internalMsg
	}
	switch e.Kind {
	case errorx.KindNotFound:
		return http.StatusNotFound, e.Msg
	case errorx.KindConflict:
		return http.StatusConflict, e.Msg
	case errorx.KindUnauthorized:
		return http.StatusUnauthorized, e.Msg
	case errorx.KindForbidden:
		return http.StatusForbidden, e.Msg
	case errorx.KindValidation:
		return http.StatusBadRequest, e.Msg
	default:
		return http.StatusInternalServerError, internalMsg
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
	})
}
