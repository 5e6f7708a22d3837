package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Detail sends a flat `{"detail": ...}` error body with the given status.
func Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, DetailResp{Detail: detail})
}

// BadRequest sends 400 with the error message as detail.
func BadRequest(c *gin.Context, err error) {
	Detail(c, http.StatusBadRequest, err.Error())
}

// InternalError sends 500 with the error message as detail.
func InternalError(c *gin.Context, err error) {
	Detail(c, http.StatusInternalServerError, err.Error())
}

// TooManyRequests sends 429 with the given detail.
func TooManyRequests(c *gin.Context, detail string) {
	Detail(c, http.StatusTooManyRequests, detail)
}
