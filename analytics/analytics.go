package analytics

import (
	"sync"

	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/util"
	"github.com/mohitkumar/engage/visibility"
)

type DataCollectorConfig struct {
	FileName      string
	CollectorType DataCollectorType
	QueueSize     int
}

type DataCollectorType string

const LOG_FILE_DATA_COLLECTOR DataCollectorType = "log-file"
const NOOP_DATA_COLLECTOR DataCollectorType = "noop"

// DecisionCollector keeps an audit trail of what was shown for an engagement.
type DecisionCollector interface {
	RecordEvaluation(engagementId string, stepId step.Id, decisions visibility.Decisions)
	Close() error
}

type evaluationRecord struct {
	engagementId string
	stepId       step.Id
	decisions    visibility.Decisions
}

func NewDataCollector(config DataCollectorConfig, wg *sync.WaitGroup) (DecisionCollector, error) {
	switch config.CollectorType {
	case LOG_FILE_DATA_COLLECTOR:
		c, err := NewLogFileDataCollector(config.FileName)
		if err != nil {
			return nil, err
		}
		return newAsyncCollector(c, config.QueueSize, wg), nil
	default:
		return NoopCollector{}, nil
	}
}

type NoopCollector struct{}

func (NoopCollector) RecordEvaluation(string, step.Id, visibility.Decisions) {}

func (NoopCollector) Close() error {
	return nil
}

// asyncCollector moves writes off the request path.
type asyncCollector struct {
	delegate DecisionCollector
	worker   *util.Worker
}

func newAsyncCollector(delegate DecisionCollector, capacity int, wg *sync.WaitGroup) *asyncCollector {
	if capacity <= 0 {
		capacity = 1024
	}
	ac := &asyncCollector{delegate: delegate}
	ac.worker = util.NewWorker("decision-collector", wg, ac.handle, capacity)
	ac.worker.Start()
	return ac
}

func (ac *asyncCollector) handle(task util.Task) error {
	rec := task.(evaluationRecord)
	ac.delegate.RecordEvaluation(rec.engagementId, rec.stepId, rec.decisions)
	return nil
}

func (ac *asyncCollector) RecordEvaluation(engagementId string, stepId step.Id, decisions visibility.Decisions) {
	ac.worker.Send(evaluationRecord{engagementId: engagementId, stepId: stepId, decisions: decisions})
}

func (ac *asyncCollector) Close() error {
	ac.worker.Stop()
	return ac.delegate.Close()
}
