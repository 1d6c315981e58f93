package user

import "gitee.com/taoJie_1/dialogue-bot/dao"

type ServiceGroup struct {
	SearchService SearchService
}

func NewServiceGroup() ServiceGroup {
	return ServiceGroup{
		SearchService: NewSearchService(&dao.App.DialoguesDb, DefaultWeigher{}),
	}
}
