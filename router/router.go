package router

import (
	"gitee.com/taoJie_1/dialogue-bot/controller"
	"gitee.com/taoJie_1/dialogue-bot/middleware"
	"gitee.com/taoJie_1/dialogue-bot/model/common"

	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	// 限制form内存(默认32MiB)
	ginServer.MaxMultipartMemory = 32 << 20

	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	ginServer.NoRoute(func(ctx *gin.Context) {
		common.FailNotFound(ctx)
	})

	api := ginServer.Group("api")

	userGroup := api.Group("user")
	{
		userGroup.POST("/search", controller.Api.UserApiGroup.SearchApi.Search)
		userGroup.POST("/chat", controller.Api.UserApiGroup.ChatApi.HandleChat)
	}

	adminGroup := api.Group("admin")
	{
		adminGroup.POST("/dialogue/import", controller.Api.AdminApiGroup.DialogueApi.Import)
		adminGroup.PUT("/dialogue/:id", controller.Api.AdminApiGroup.DialogueApi.Update)
		adminGroup.DELETE("/dialogue/:id", controller.Api.AdminApiGroup.DialogueApi.Delete)
		adminGroup.POST("/suggest", controller.Api.AdminApiGroup.SuggestApi.GenerateQuestions)
		adminGroup.POST("/upload", controller.Api.AdminApiGroup.UploadApi.UploadImage)
	}
}
