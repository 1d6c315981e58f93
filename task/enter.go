package task

// Manager 统一管理后台维护任务
type Manager struct{}

// NewManager 创建一个新的任务管理器
func NewManager() *Manager {
	return &Manager{}
}
