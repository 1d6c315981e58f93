package service

import (
	"gitee.com/taoJie_1/dialogue-bot/service/admin"
	"gitee.com/taoJie_1/dialogue-bot/service/user"
)

type ServiceGroup struct {
	UserServiceGroup  user.ServiceGroup
	AdminServiceGroup admin.ServiceGroup
}

var Service = new(ServiceGroup)
