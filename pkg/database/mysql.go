package database

import (
	"sync"

	"VidTube.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDB opens the shared gorm connection on first use. Every dal package
// points its DB var here so the process holds a single pool.
func GetDB() *gorm.DB {
	once.Do(func() {
		var err error
		db, err = gorm.Open(mysql.Open(utils.GetMysqlDsn()),
			&gorm.Config{
				PrepareStmt:            true,
				SkipDefaultTransaction: true,
			},
		)
		if err != nil {
			panic(err)
		}
		if err = db.Use(gormopentracing.New()); err != nil {
			panic(err)
		}
	})
	return db
}
