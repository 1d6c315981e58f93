package user

import (
	"gitee.com/taoJie_1/dialogue-bot/model/common"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/service"
	"github.com/gin-gonic/gin"
)

type SearchApi struct{}

func (s *SearchApi) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, "参数无效")
		return
	}

	// 页码为负时拒绝; 未传(0)视为第一页, 上界不做校验
	if req.Page < 0 {
		common.Fail(c, "页码必须为正整数")
		return
	}

	result, err := service.Service.UserServiceGroup.SearchService.Search(c, &req)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, result)
}
