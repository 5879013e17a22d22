package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Err 错误信封；成功响应直接写投影，不包壳
type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Fail writes the error envelope with the real HTTP status. Empty msg falls
// back to the standard status text, so internal detail never leaks by
// accident.
func Fail(c *gin.Context, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, Err{Code: status, Msg: msg})
}
