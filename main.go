package main

import (
	"log"
	"os"
	"time"

	"relview/logger"
	"relview/server"
	"relview/server/cache"
	"relview/server/data"
	"relview/server/object/meta"
	"relview/server/pg"
	"relview/utils"

	"github.com/getsentry/sentry-go"
)

type OptsDesc struct {
	prmsCnt int
	handler func(p []string) error
}

const dbConnectAttempts = 12

func init() {
	appConfig := utils.GetConfig()
	logger.SetOut(os.Stdout)
	if err := logger.SetLevel(appConfig.LogLevel); err != nil {
		log.Printf("Wrong log level '%s', keeping the default one.\n", appConfig.LogLevel)
	}
	log.Printf("The logger is initialized: level: '%s', output: '%s'.\n", appConfig.LogLevel, "stdout")

	if len(appConfig.SentryDsn) > 0 {
		if err := sentry.Init(sentry.ClientOptions{Dsn: appConfig.SentryDsn}); err != nil {
			log.Printf("Sentry initialization failed: %s\n", err)
		}
	}
}

//newLoader picks the record source: Postgres when a connection url is set,
//an empty in-memory store otherwise. Redis, when configured, caches either.
func newLoader(appConfig *utils.AppConfig) (data.Loader, error) {
	var loader data.Loader = data.NewMemoryLoader()
	if appConfig.DbConnectionUrl != "" {
		db, err := pg.Connect(appConfig.DbConnectionUrl, dbConnectAttempts)
		if err != nil {
			return nil, err
		}
		loader = pg.NewLoader(db)
	} else {
		logger.Warn("DB_CONNECTION_URL is not set, records are kept in memory.")
	}
	if appConfig.RedisUrl != "" {
		client, err := cache.NewClient(appConfig.RedisUrl)
		if err != nil {
			return nil, err
		}
		loader = cache.NewLoader(client, loader, appConfig.CacheTTL)
	}
	return loader, nil
}

//Main function runs Relview server. The following options are avaliable:
// -a - address to use. Default value is empty.
// -p - port to use. Default value is 8000.
// -r - path root to use. Default value is URL_PREFIX or "/relview".
func main() {
	appConfig := utils.GetConfig()
	defer sentry.Flush(2 * time.Second)

	metaCache := meta.NewCache()
	if err := metaCache.LoadFile(appConfig.MetaPath); err != nil {
		log.Fatalln(err)
	}
	loader, err := newLoader(appConfig)
	if err != nil {
		log.Fatalln(err)
	}

	//instantiate Server with default configuration
	var srv = server.New("", "8000", appConfig.UrlPrefix, metaCache, loader)

	//apply command-line-specified options if there are some
	var opts = map[string]OptsDesc{
		"-a": {1, func(p []string) error {
			srv.SetAddr(p[0])
			return nil
		}},
		"-p": {1, func(p []string) error {
			srv.SetPort(p[0])
			return nil
		}},
		"-r": {1, func(p []string) error {
			srv.SetRoot(p[0])
			return nil
		}},
	}

	args := os.Args[1:]
	for len(args) > 0 {
		if v, e := opts[args[0]]; e && len(args)-1 >= v.prmsCnt {
			if err := v.handler(args[1 : v.prmsCnt+1]); err != nil {
				log.Fatalln(err)
			}
			args = args[1+v.prmsCnt:]
		} else {
			log.Fatalf("Wrong argument '%s'", args[0])
		}
	}

	log.Println("Relview server started.")
	if err := srv.Setup(appConfig).ListenAndServe(); err != nil {
		log.Fatalln(err)
	}
}
