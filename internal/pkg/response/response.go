package response

import (
	"Parley/internal/api/dto"
	"Parley/internal/service"
	"context"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// 业务状态码放在响应体中，HTTP 状态码固定为 200
func write(c *gin.Context, code int, message string, data any) {
	c.JSON(http.StatusOK, dto.Response{Code: code, Message: message, Data: data})
}

// Success 成功返回封装
func Success(c *gin.Context, data any) {
	write(c, Ok, "success", data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	write(c, businessCode, message, nil)
}

// Error 按 Resolve 的结果输出
func Error(c *gin.Context, err error) {
	code, message := Resolve(c.Request.Context(), err)
	Fail(c, code, message)
}

// Resolve 把错误翻译为业务码与对外文案，未登记的错误只记录日志
func Resolve(ctx context.Context, err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return BadRequest, service.ErrParamInvalid.Error()
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return BadRequest, service.ErrParamInvalid.Error()
	}

	if code, ok := service.CodeOf(err); ok {
		return code, err.Error()
	}
	log.ErrorContext(ctx, "unexpected error", "err", err)
	return InternalServerError, service.UnExpectedError.Error()
}
