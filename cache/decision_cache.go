package cache

import (
	"strconv"
	"time"

	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/util"
	"github.com/mohitkumar/engage/visibility"
	c "github.com/patrickmn/go-cache"
)

type evaluationKey struct {
	StepId step.Id          `json:"stepId"`
	Facts  facts.Engagement `json:"facts"`
}

// DecisionCache memoises visibility.Evaluate. Decisions depend only on the
// step and the facts, so a hit is always equal to a fresh evaluation.
type DecisionCache struct {
	cache  *c.Cache
	encdec util.EncoderDecoder[evaluationKey]
}

func NewDecisionCache(ttl time.Duration) *DecisionCache {
	return &DecisionCache{
		cache:  c.New(ttl, 2*ttl),
		encdec: util.NewJsonEncoderDecoder[evaluationKey](),
	}
}

// Evaluate returns the decisions and whether they came from the cache. Keys
// that can not be fingerprinted are evaluated without caching.
func (ch *DecisionCache) Evaluate(id step.Id, f facts.Engagement) (visibility.Decisions, bool) {
	fp, err := util.Fingerprint[evaluationKey](ch.encdec, evaluationKey{StepId: id, Facts: f})
	if err != nil {
		return visibility.Evaluate(id, f), false
	}
	key := strconv.FormatUint(fp, 16)
	if v, found := ch.cache.Get(key); found {
		return copyDecisions(v.(visibility.Decisions)), true
	}
	decisions := visibility.Evaluate(id, f)
	ch.cache.Set(key, copyDecisions(decisions), c.DefaultExpiration)
	return decisions, false
}

func (ch *DecisionCache) Size() int {
	return ch.cache.ItemCount()
}

func (ch *DecisionCache) Flush() {
	ch.cache.Flush()
}

func copyDecisions(d visibility.Decisions) visibility.Decisions {
	out := make(visibility.Decisions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
