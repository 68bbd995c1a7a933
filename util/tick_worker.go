package util

import (
	"sync"
	"time"

	"github.com/mohitkumar/engage/logger"
	"go.uber.org/zap"
)

type TickWorker struct {
	stop         chan struct{}
	tickInterval time.Duration
	wg           *sync.WaitGroup
	name         string
	fn           func()
	mu           sync.Mutex
	running      bool
}

func NewTickWorker(name string, interval time.Duration, fn func(), wg *sync.WaitGroup) *TickWorker {
	return &TickWorker{
		stop:         make(chan struct{}),
		tickInterval: interval,
		wg:           wg,
		fn:           fn,
		name:         name,
	}
}

func (tw *TickWorker) Start() {
	ticker := time.NewTicker(tw.tickInterval)
	tw.setRunning(true)
	tw.wg.Add(1)
	go func() {
		defer tw.wg.Done()
		defer tw.setRunning(false)
		for {
			select {
			case <-ticker.C:
				tw.fn()
			case <-tw.stop:
				logger.Info("stopping tick worker", zap.String("worker", tw.name))
				ticker.Stop()
				return
			}
		}
	}()
	logger.Info("tick worker started", zap.String("worker", tw.name), zap.Duration("interval", tw.tickInterval))
}

func (tw *TickWorker) Stop() {
	close(tw.stop)
}

func (tw *TickWorker) IsRunning() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.running
}

func (tw *TickWorker) setRunning(running bool) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.running = running
}
