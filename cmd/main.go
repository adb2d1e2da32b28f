package main

import (
	"log"
	"time"

	"github.com/cgbookstore/go-backend-clean-architecture/api/route"
	"github.com/cgbookstore/go-backend-clean-architecture/bootstrap"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
	"github.com/gin-gonic/gin"
)

func main() {
	app := bootstrap.App()
	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	// 启动时确保索引存在
	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, app, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
