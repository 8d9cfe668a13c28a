package response

import "github.com/gin-gonic/gin"

// ErrBody 错误响应体。成功响应直接写资源本身，不包信封。
type ErrBody struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func newErr(code int, customMsg string) ErrBody {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return ErrBody{Code: code, Msg: msg}
}

// Fail 线上状态码与业务码一致
func Fail(c *gin.Context, code int, customMsg string) {
	c.JSON(code, newErr(code, customMsg))
}

// AbortFail 中间件里用：终止后续 handler
func AbortFail(c *gin.Context, code int, customMsg string) {
	c.AbortWithStatusJSON(code, newErr(code, customMsg))
}
