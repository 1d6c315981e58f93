package common

// ChatRequest 对应 OneBot HTTP 上报的消息事件体
type ChatRequest struct {
	PostType    string `json:"post_type"`    // "message", "notice" 等
	MessageType string `json:"message_type"` // "group" 或 "private"
	UserId      int64  `json:"user_id"`
	GroupId     int64  `json:"group_id"`
	RawMessage  string `json:"raw_message"`
}
