package admin

type ApiGroup struct {
	DialogueApi DialogueApi
	SuggestApi  SuggestApi
	UploadApi   UploadApi
}
