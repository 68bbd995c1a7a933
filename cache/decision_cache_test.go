package cache

import (
	"testing"
	"time"

	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/visibility"
	"github.com/stretchr/testify/require"
)

func TestDecisionCache(t *testing.T) {
	ch := NewDecisionCache(time.Minute)
	f := facts.Engagement{
		JobRoles: []facts.JobRole{{RoleId: facts.RoleBiller}},
		Answers:  map[string]facts.Answer{"usedInCapitalRaising": facts.Yes, "isForeignEntity": facts.No},
	}

	first, hit := ch.Evaluate(step.Draft, f)
	require.False(t, hit)
	require.Equal(t, visibility.Evaluate(step.Draft, f), first)

	same := facts.Engagement{
		JobRoles: []facts.JobRole{{RoleId: facts.RoleBiller}},
		Answers:  map[string]facts.Answer{"isForeignEntity": facts.No, "usedInCapitalRaising": facts.Yes},
	}
	second, hit := ch.Evaluate(step.Draft, same)
	require.True(t, hit)
	require.Equal(t, first, second)
	require.Equal(t, 1, ch.Size())

	_, hit = ch.Evaluate(step.SecApproval, f)
	require.False(t, hit)
	require.Equal(t, 2, ch.Size())
}

func TestDecisionCacheReturnsCopies(t *testing.T) {
	ch := NewDecisionCache(time.Minute)
	first, _ := ch.Evaluate(step.Draft, facts.Engagement{})
	first[string(visibility.SAVE_BUTTON)] = visibility.Decision{State: visibility.Hidden}

	second, hit := ch.Evaluate(step.Draft, facts.Engagement{})
	require.True(t, hit)
	require.True(t, second[string(visibility.SAVE_BUTTON)].Visible())

	ch.Flush()
	require.Equal(t, 0, ch.Size())
}
