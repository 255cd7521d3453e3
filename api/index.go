package handler

import (
	"eventzone/config"
	"eventzone/di"
	_ "eventzone/docs"
	"eventzone/shared/logger"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The dependency graph is built on the first invocation and
// reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
