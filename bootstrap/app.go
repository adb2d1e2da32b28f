package bootstrap

import (
	badger "github.com/dgraph-io/badger/v4"
	"github.com/cgbookstore/go-backend-clean-architecture/mongo"
)

type Application struct {
	Env     *Env
	Mongo   mongo.Client
	CacheDB *badger.DB
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)
	app.CacheDB = NewCacheDatabase(app.Env)
	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
	CloseCacheDatabase(app.CacheDB)
}
