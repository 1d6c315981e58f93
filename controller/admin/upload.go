package admin

import (
	"gitee.com/taoJie_1/dialogue-bot/model/common"
	"gitee.com/taoJie_1/dialogue-bot/service"
	"github.com/gin-gonic/gin"
)

type UploadApi struct{}

func (u *UploadApi) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.Fail(c, "未找到上传文件")
		return
	}

	url, err := service.Service.AdminServiceGroup.UploadService.UploadImage(file)
	if err != nil {
		common.Fail(c, err.Error())
		return
	}
	common.Success(c, map[string]string{"url": url})
}
