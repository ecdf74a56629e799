// @title           Study Guide API
// @version         1.0
// @description     Upload a syllabus, follow the guide build and read the resulting study guide.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/StudyGuideAPI/internal/config"
	"github.com/akolanti/StudyGuideAPI/internal/data/store"
	jobmodel "github.com/akolanti/StudyGuideAPI/internal/domain/jobModel"
	"github.com/akolanti/StudyGuideAPI/internal/extract"
	"github.com/akolanti/StudyGuideAPI/internal/guide"
	"github.com/akolanti/StudyGuideAPI/internal/handlers"
	"github.com/akolanti/StudyGuideAPI/internal/job"
	"github.com/akolanti/StudyGuideAPI/internal/resources"
	"github.com/akolanti/StudyGuideAPI/internal/server"
	"github.com/akolanti/StudyGuideAPI/internal/topics"
	"github.com/akolanti/StudyGuideAPI/internal/worker"
	"github.com/akolanti/StudyGuideAPI/pkg/logger_i"
)

var (
	listenAddr        string
	envFile           string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.StringVar(&envFile, "env-file", config.DefaultEnvFile, "optional dotenv file with the search API keys")
	flag.Parse()

	creds, err := config.LoadCredentials(envFile)
	if err != nil {
		logger.Error("Could not read credentials file", "file", envFile, "error", err)
		return
	}
	if !creds.Complete() {
		logger.Warn("Search API keys are missing, guides will carry a placeholder instead of resources", "missing", creds.Missing())
	}

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		StagingDir:        guide.StagingDir(config.StagingDirName),
	}
	logger.Info("Starting job service")

	if redisJobs := store.GetRedisJobStore(serviceContext); redisJobs != nil {
		serviceConfig.JobStore = redisJobs
	} else if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Error("Redis job store is offline, using the in-memory store")
		memoryJobs := store.InitInMemoryJobStore()
		go memoryJobs.RunSweeper(serviceContext, config.JobStoreSweepInterval)
		serviceConfig.JobStore = memoryJobs
	} else {
		logger.Error("Redis job store is offline. Shutting down.")
		return
	}
	service := job.InitJobService(serviceConfig)

	finder, err := resources.NewGoogleFinder(serviceContext, creds)
	if err != nil {
		logger.Error("Could not create the search clients. Shutting down.", "error", err)
		return
	}
	guideService := guide.NewService(
		extract.NewExtractor(),
		topics.NewDetector(nil),
		finder,
		config.TopicLookupDelay,
	)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, guideService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.CreateServer(listenAddr)
	go server.ShutDownHandler(shutdownParams)

	<-stopExecution
	logger.Info("Server stopped")
}
