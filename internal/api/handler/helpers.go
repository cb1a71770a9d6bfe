package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// parseIDParam 解析路径中的数字 ID；无效时写入 400 响应并返回 false
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "ID 参数无效")
		return 0, false
	}
	return id, true
}
