package admin

import (
	"strconv"

	"gitee.com/taoJie_1/dialogue-bot/model/common"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/service"
	"github.com/gin-gonic/gin"
)

type DialogueApi struct{}

func (d *DialogueApi) Import(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, err.Error())
		return
	}

	n, err := service.Service.AdminServiceGroup.DialogueService.Import(c, &req)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, map[string]interface{}{"inserted": n})
}

func (d *DialogueApi) Update(c *gin.Context) {
	id, err := parseId(c.Param("id"))
	if err != nil {
		common.Fail(c, "ID 无效")
		return
	}

	var req dto.UpdateDialogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, err.Error())
		return
	}

	if err := service.Service.AdminServiceGroup.DialogueService.Update(c, id, &req); err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, nil)
}

func (d *DialogueApi) Delete(c *gin.Context) {
	id, err := parseId(c.Param("id"))
	if err != nil {
		common.Fail(c, "ID 无效")
		return
	}

	if err := service.Service.AdminServiceGroup.DialogueService.Delete(c, id); err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, nil)
}

func parseId(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
