package dao

import (
	"github.com/jmoiron/sqlx"
)

var (
	DB *sqlx.DB

	App = new(AppGroup)

	// sqlBuilder 提供拼接批量SQL的工具方法
	sqlBuilder = new(dbUtils)
)

type AppGroup struct {
	DialoguesDb DialoguesDb
}
