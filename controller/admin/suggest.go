package admin

import (
	"gitee.com/taoJie_1/dialogue-bot/model/common"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/service"
	"github.com/gin-gonic/gin"
)

type SuggestApi struct{}

func (s *SuggestApi) GenerateQuestions(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, err.Error())
		return
	}

	resp, err := service.Service.AdminServiceGroup.SuggestService.GenerateQuestions(c, &req)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, resp)
}
