package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/engage/container"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/metrics"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/visibility"
	"go.uber.org/zap"
)

type VisibilityService struct {
	container *container.DIContiner
}

func NewVisibilityService(container *container.DIContiner) *VisibilityService {
	return &VisibilityService{
		container: container,
	}
}

// Evaluate computes decisions for facts supplied inline by the caller.
func (s *VisibilityService) Evaluate(stepId step.Id, f facts.Engagement) visibility.Decisions {
	return s.evaluate(metrics.SOURCE_INLINE, "", stepId, f)
}

func (s *VisibilityService) EvaluateEngagement(ctx context.Context, id string) (*facts.Document, visibility.Decisions, error) {
	doc, err := s.container.GetFactStore().Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return doc, s.evaluate(metrics.SOURCE_STORED, id, doc.CurrentStepId, doc.Facts), nil
}

func (s *VisibilityService) evaluate(source string, engagementId string, stepId step.Id, f facts.Engagement) visibility.Decisions {
	m := s.container.GetMetrics()
	start := time.Now()
	decisions, hit := s.container.GetDecisionCache().Evaluate(stepId, f)
	m.ObserveEvaluateLatency(time.Since(start))
	m.IncrementCacheLookup(hit)
	m.IncrementEvaluation(source, stepLabel(stepId))
	if !stepId.Known() && stepId != step.None {
		logger.Warn("evaluating unknown workflow step", zap.Int("stepId", int(stepId)), zap.String("engagement", engagementId))
	}
	if engagementId != "" {
		s.container.GetCollector().RecordEvaluation(engagementId, stepId, decisions)
	}
	return decisions
}

// stepLabel keeps metric cardinality bounded when the backend sends ids the
// enumeration does not know yet.
func stepLabel(id step.Id) string {
	if id == step.None {
		return "none"
	}
	if !id.Known() {
		return "unknown"
	}
	return id.Name()
}

func (s *VisibilityService) CreateEngagement(ctx context.Context, doc facts.Document) (string, error) {
	doc.Id = uuid.New().String()
	if err := s.container.GetFactStore().Save(ctx, doc); err != nil {
		logger.Error("error creating engagement", zap.Error(err))
		return "", err
	}
	logger.Info("created engagement", zap.String("engagement", doc.Id), zap.Stringer("step", doc.CurrentStepId))
	return doc.Id, nil
}

func (s *VisibilityService) SaveEngagement(ctx context.Context, doc facts.Document) error {
	return s.container.GetFactStore().Save(ctx, doc)
}

func (s *VisibilityService) GetEngagement(ctx context.Context, id string) (*facts.Document, error) {
	return s.container.GetFactStore().Get(ctx, id)
}

func (s *VisibilityService) DeleteEngagement(ctx context.Context, id string) error {
	return s.container.GetFactStore().Delete(ctx, id)
}

// ExtractAndSave maps a raw engagement document from the approval backend
// onto facts and stores the result under id.
func (s *VisibilityService) ExtractAndSave(ctx context.Context, id string, raw []byte) (*facts.Document, error) {
	doc, err := s.container.GetExtractor().Extract(id, raw)
	if err != nil {
		return nil, err
	}
	if err := s.container.GetFactStore().Save(ctx, *doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReportCacheSize is run periodically by the agent.
func (s *VisibilityService) ReportCacheSize() {
	s.container.GetMetrics().SetCacheSize(s.container.GetDecisionCache().Size())
}
