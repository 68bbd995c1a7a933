package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/engage/analytics"
	"github.com/mohitkumar/engage/config"
	"github.com/mohitkumar/engage/container"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/metrics"
	"github.com/mohitkumar/engage/persistence"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/visibility"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*VisibilityService, *container.DIContiner) {
	t.Helper()
	var wg sync.WaitGroup
	c := container.NewDiContainer()
	err := c.Init(context.Background(), config.Config{
		StorageType:     config.STORAGE_TYPE_INMEM,
		HttpPort:        8080,
		CacheTTL:        time.Minute,
		ExtractorPaths:  facts.DefaultPaths(),
		AnalyticsConfig: analytics.DataCollectorConfig{CollectorType: analytics.NOOP_DATA_COLLECTOR},
	}, &wg)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, c.Close())
		wg.Wait()
	})
	return NewVisibilityService(c), c
}

func TestEvaluateInline(t *testing.T) {
	s, c := newTestService(t)
	d := s.Evaluate(step.Draft, facts.Engagement{})
	require.Equal(t, visibility.Evaluate(step.Draft, facts.Engagement{}), d)

	s.Evaluate(step.Draft, facts.Engagement{})
	s.Evaluate(step.Id(424242), facts.Engagement{})

	m := c.GetMetrics()
	require.Equal(t, float64(2), testutil.ToFloat64(m.Evaluations.WithLabelValues(metrics.SOURCE_INLINE, "draft")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Evaluations.WithLabelValues(metrics.SOURCE_INLINE, "unknown")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))

	s.ReportCacheSize()
	require.Equal(t, float64(2), testutil.ToFloat64(m.CacheSize))
}

func TestEngagementLifecycle(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	id, err := s.CreateEngagement(ctx, facts.Document{Id: "ignored", CurrentStepId: step.InternalAccountingForeignDataEntry})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	doc, d, err := s.EvaluateEngagement(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, doc.Id)
	require.False(t, d[string(visibility.SAVE_BUTTON)].Visible())

	doc.CurrentStepId = step.Draft
	require.NoError(t, s.SaveEngagement(ctx, *doc))
	_, d, err = s.EvaluateEngagement(ctx, id)
	require.NoError(t, err)
	require.True(t, d[string(visibility.SAVE_BUTTON)].Visible())

	require.NoError(t, s.DeleteEngagement(ctx, id))
	_, _, err = s.EvaluateEngagement(ctx, id)
	var notFound persistence.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestExtractAndSave(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	doc, err := s.ExtractAndSave(ctx, "eng-x", []byte(`{
		"workflow": {"currentStepId": 100040, "instanceId": "wf-1"},
		"engagement": {"isAttest": false, "jobRoles": [{"roleId": 3}], "billToClientNumber": "B-7"}
	}`))
	require.NoError(t, err)
	require.Equal(t, step.RelationshipPartnerApproval, doc.CurrentStepId)

	stored, err := s.GetEngagement(ctx, "eng-x")
	require.NoError(t, err)
	require.Equal(t, *doc, *stored)

	_, d, err := s.EvaluateEngagement(ctx, "eng-x")
	require.NoError(t, err)
	require.True(t, d[visibility.NON_ATTEST_SECTION].Visible())
	require.True(t, d[visibility.BILLING_SCHEDULES].Enabled())
	require.True(t, d[visibility.RISK_RATING_FIELD].Enabled())
	require.False(t, d[string(visibility.START_WORKFLOW_BUTTON)].Visible())

	_, err = s.ExtractAndSave(ctx, "eng-y", []byte(`not json`))
	var extractErr facts.ExtractError
	require.True(t, errors.As(err, &extractErr))
	_, err = s.GetEngagement(ctx, "eng-y")
	require.Error(t, err)
}
