package util

import (
	"sync"

	"github.com/mohitkumar/engage/logger"
	"go.uber.org/zap"
)

type Task any

// Worker drains tasks on a single goroutine. Send drops the task when the
// buffer is full so callers on the request path never block.
type Worker struct {
	name     string
	stop     chan struct{}
	wg       *sync.WaitGroup
	handler  func(Task) error
	taskChan chan Task
}

func NewWorker(name string, wg *sync.WaitGroup, handler func(Task) error, capacity int) *Worker {
	return &Worker{
		taskChan: make(chan Task, capacity),
		name:     name,
		wg:       wg,
		stop:     make(chan struct{}),
		handler:  handler,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case task := <-w.taskChan:
				w.handle(task)
			case <-w.stop:
				w.drain()
				logger.Info("stopping worker", zap.String("worker", w.name))
				return
			}
		}
	}()
}

func (w *Worker) handle(task Task) {
	if err := w.handler(task); err != nil {
		logger.Error("error in executing task in worker", zap.String("worker", w.name), zap.Error(err))
	}
}

func (w *Worker) drain() {
	for {
		select {
		case task := <-w.taskChan:
			w.handle(task)
		default:
			return
		}
	}
}

func (w *Worker) Send(task Task) bool {
	select {
	case w.taskChan <- task:
		return true
	default:
		logger.Warn("worker queue full, dropping task", zap.String("worker", w.name))
		return false
	}
}

func (w *Worker) Stop() {
	close(w.stop)
}
