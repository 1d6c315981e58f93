package user

import (
	"context"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/common"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/service"
	userservice "gitee.com/taoJie_1/dialogue-bot/service/user"
	"github.com/gin-gonic/gin"
)

type ChatApi struct{}

// HandleChat 处理OneBot消息事件上报。
// 识别为搜索指令的消息异步执行搜索并把结果推回原会话, 其余消息忽略。
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if req.PostType != "message" {
		common.Success(ctx, nil)
		return
	}

	searchReq, ok := userservice.ParseSearchCommand(req.RawMessage)
	if !ok {
		common.Success(ctx, nil)
		return
	}

	// 回复消息已接收
	common.Success(ctx, nil)

	// 避免`req`在HTTP返回后可能被Gin回收。
	reqCopy := req
	go d.processSearchAsync(context.Background(), reqCopy, searchReq)
}

func (d *ChatApi) processSearchAsync(ctx context.Context, req common.ChatRequest, searchReq *dto.SearchRequest) {
	defer func() {
		if p := recover(); p != nil {
			global.Log.Errorf("[processSearchAsync]: %v", p)
		}
	}()

	result, err := service.Service.UserServiceGroup.SearchService.Search(ctx, searchReq)
	if err != nil {
		global.Log.Errorf("[processSearchAsync] 搜索失败: %v", err)
		return
	}

	d.reply(req, result)
}

// reply 把搜索结果推回消息来源的会话
func (d *ChatApi) reply(req common.ChatRequest, content string) {
	if global.OnebotService == nil {
		global.Log.Warn("OneBot服务未初始化, 搜索结果无法送达")
		return
	}

	var err error
	if req.MessageType == "group" {
		err = global.OnebotService.SendGroupMsg(req.GroupId, content)
	} else {
		err = global.OnebotService.SendPrivateMsg(req.UserId, content)
	}
	if err != nil {
		global.Log.Errorf("推送搜索结果失败: %v", err)
	}
}
