package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	RequestsPerNewWorkerCount int64 = 2
	MaxWorkerCount            int64 = 4
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 30 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//a syllabus with a lot of topics takes (2 calls + delay) per topic
	JobTimeout = 10 * time.Minute

	//upload
	MaxUploadSize  = 32 << 20 //32mb
	StagingDirName = "temporary_data"

	//extraction
	PageExtractTimeout = 10 * time.Second

	//topic detection
	MinTopicLength = 4

	//resource lookup
	TopicLookupDelay       = 1 * time.Second
	BackendTimeout         = 15 * time.Second
	MaxVideoResults        = 3
	MaxArticleResults      = 2
	VideoQueryTemplate     = "%s tutorial explained"
	ArticleQueryTemplate   = "in-depth tutorial %s"
	VideoRelevanceLanguage = "en"
	YouTubeWatchURL        = "https://www.youtube.com/watch?v="

	MaxIdleConns        = 20
	MaxIdleConnsPerHost = 10
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	RedisJobStore = 0

	//jobs are tracking state, not an archive of guides
	JobStoreTTL           = 1 * time.Hour
	JobStoreSweepInterval = 5 * time.Minute

	AppVersion = "1.0.0"
)
