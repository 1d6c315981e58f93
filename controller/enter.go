package controller

import (
	"gitee.com/taoJie_1/dialogue-bot/controller/admin"
	"gitee.com/taoJie_1/dialogue-bot/controller/user"
)

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup  user.ApiGroup
	AdminApiGroup admin.ApiGroup
}
