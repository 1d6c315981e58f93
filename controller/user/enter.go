package user

type ApiGroup struct {
	SearchApi SearchApi
	ChatApi   ChatApi
}
