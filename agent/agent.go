package agent

import (
	"context"
	"sync"

	"github.com/mohitkumar/engage/config"
	"github.com/mohitkumar/engage/container"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/rest"
	"github.com/mohitkumar/engage/service"
	"github.com/mohitkumar/engage/util"
)

type Agent struct {
	Config            config.Config
	diContainer       *container.DIContiner
	visibilityService *service.VisibilityService
	httpServer        *rest.Server
	metricsReporter   *util.TickWorker
	shutdown          bool
	shutdownLock      sync.Mutex
	wg                sync.WaitGroup
}

func New(config config.Config) (*Agent, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	a := &Agent{
		Config: config,
	}
	setup := []func() error{
		a.setupContainer,
		a.setupVisibilityService,
		a.setupMetricsReporter,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupContainer() error {
	a.diContainer = container.NewDiContainer()
	return a.diContainer.Init(context.Background(), a.Config, &a.wg)
}

func (a *Agent) setupVisibilityService() error {
	a.visibilityService = service.NewVisibilityService(a.diContainer)
	return nil
}

func (a *Agent) setupMetricsReporter() error {
	if a.Config.MetricsInterval <= 0 {
		return nil
	}
	a.metricsReporter = util.NewTickWorker("metrics-reporter", a.Config.MetricsInterval, a.visibilityService.ReportCacheSize, &a.wg)
	return nil
}

func (a *Agent) setupHttpServer() error {
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.visibilityService, a.diContainer.GetMetrics().Handler())
	return err
}

// Start returns immediately; a failing http server shuts the agent down and
// reports on the returned channel.
func (a *Agent) Start() <-chan error {
	errs := make(chan error, 1)
	if a.metricsReporter != nil {
		a.metricsReporter.Start()
	}
	go func() {
		if err := a.httpServer.Start(); err != nil {
			_ = a.Shutdown()
			errs <- err
		}
	}()
	return errs
}

func (a *Agent) Shutdown() error {
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	logger.Info("shutting down server")
	a.shutdown = true

	shutdown := []func() error{
		a.httpServer.Stop,
		func() error {
			if a.metricsReporter != nil {
				a.metricsReporter.Stop()
			}
			return nil
		},
		a.diContainer.Close,
	}
	for _, fn := range shutdown {
		if err := fn(); err != nil {
			return err
		}
	}
	logger.Info("waiting for all services to shutdown...")
	a.wg.Wait()
	_ = logger.Sync()
	return nil
}
