package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/engage/logger"
	"go.uber.org/zap"
)

type baseDao struct {
	ring      *Ring
	namespace string
}

func newBaseDao(conf Config) *baseDao {
	return &baseDao{
		ring:      NewRing(conf),
		namespace: conf.Namespace,
	}
}

func (bs *baseDao) getNamespaceKey(args ...string) string {
	return fmt.Sprintf("%s:%s", bs.namespace, strings.Join(args, ":"))
}

// clientFor routes by engagement id so every key of an engagement lives on
// the same node.
func (bs *baseDao) clientFor(id string) rd.UniversalClient {
	return bs.ring.Locate(id).client
}

// connect pings every node, retrying at a constant interval.
func (bs *baseDao) connect(ctx context.Context, retries int, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	for _, n := range bs.ring.Nodes() {
		n := n
		b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(retries)), ctx)
		err := backoff.Retry(func() error {
			err := n.client.Ping(ctx).Err()
			if err != nil {
				logger.Warn("redis node not reachable", zap.String("addr", n.addr), zap.Error(err))
			}
			return err
		}, b)
		if err != nil {
			return err
		}
		logger.Info("connected to redis node", zap.String("addr", n.addr))
	}
	return nil
}

func (bs *baseDao) Close() error {
	return bs.ring.Close()
}
