package main

import (
	"bearer-auth-api/internal/adapters/out/metrics"
	"bearer-auth-api/internal/app"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/docs"
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var ProgramVersion = "dev"

const (
	ProgramName = "bearer-auth-api"
)

func main() {
	configFileFlag := flag.String("config", "config.yml", "Path to configuration YAML")
	pidFileFlag := flag.String("pidfile", "", "Path to PID file (optional)")
	bootstrapFlag := flag.Bool("bootstrap", false, "If the instance is the first instance of its group")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFileFlag)
	if err != nil {
		log.WithError(err).Fatalf("cannot load --config=%s", *configFileFlag)
	}
	if err = cfg.ConfigureLogger(); err != nil {
		log.WithError(err).Fatal("cannot configure logging")
	}

	if _, err = docs.Load(context.Background()); err != nil {
		log.WithError(err).Fatal("embedded OpenAPI document")
	}

	if *pidFileFlag != "" {
		pidCleanup, err := app.CreatePIDFile(*pidFileFlag)
		if err != nil {
			log.WithError(err).Fatal("pidfile")
		}
		defer pidCleanup()
	}

	cfg.PrintHello(ProgramName, ProgramVersion, *pidFileFlag, *bootstrapFlag)

	reg := prometheus.NewRegistry()

	// add standard Go/process collectors (they are NOT in reg by default)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	actionMetrics, err := metrics.NewAuthActionMetrics(ProgramName, ProgramVersion, cfg.Metrics, reg)
	if err != nil {
		log.WithError(err).Fatal("cannot register metrics")
	}

	restServer, err := app.BuildRestServer(cfg, *bootstrapFlag, actionMetrics)
	if err != nil {
		log.WithError(err).Fatal("cannot build rest server")
	}

	router := app.BuildRouter(cfg.HttpServer, restServer)

	// Wrap router to expose /metrics alongside all existing routes.
	mux := http.NewServeMux()
	mux.Handle(cfg.HttpServer.TelemetryPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// / is the root of the API
	mux.Handle("/", router)

	servers, err := app.NewMultiHTTPServer(cfg.HttpServer, mux)
	if err != nil {
		log.WithError(err).Fatal("cannot create http servers")
	}
	if err := servers.Run(context.Background()); err != nil {
		log.WithError(err).Error("server stopped with an error")
	}
}
