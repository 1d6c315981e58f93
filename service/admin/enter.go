package admin

import "gitee.com/taoJie_1/dialogue-bot/task"

type ServiceGroup struct {
	DialogueService DialogueService
	SuggestService  SuggestService
	UploadService   UploadService
}

func NewServiceGroup(tm *task.Manager) ServiceGroup {
	return ServiceGroup{
		DialogueService: NewDialogueService(tm),
		SuggestService:  NewSuggestService(),
		UploadService:   NewUploadService(),
	}
}
