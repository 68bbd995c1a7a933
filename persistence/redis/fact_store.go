package redis

import (
	"context"
	"errors"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/persistence"
	"github.com/mohitkumar/engage/util"
	"go.uber.org/zap"
)

var _ persistence.FactStore = new(redisFactStore)

type redisFactStore struct {
	*baseDao
	conf           Config
	encoderDecoder util.EncoderDecoder[facts.Document]
}

func NewRedisFactStore(conf Config, encoderDecoder util.EncoderDecoder[facts.Document]) *redisFactStore {
	return &redisFactStore{
		baseDao:        newBaseDao(conf),
		conf:           conf,
		encoderDecoder: encoderDecoder,
	}
}

func (r *redisFactStore) Connect(ctx context.Context) error {
	return r.baseDao.connect(ctx, r.conf.ConnectRetries, r.conf.ConnectRetryInterval)
}

func (r *redisFactStore) Save(ctx context.Context, doc facts.Document) error {
	if doc.Id == "" {
		return persistence.StorageLayerError{Message: "engagement id is empty"}
	}
	data, err := r.encoderDecoder.Encode(doc)
	if err != nil {
		return err
	}
	key := r.getNamespaceKey(persistence.FACTS_PREFIX, doc.Id)
	if err := r.clientFor(doc.Id).Set(ctx, key, data, 0).Err(); err != nil {
		logger.Error("error in saving engagement facts", zap.String("engagement", doc.Id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (r *redisFactStore) Get(ctx context.Context, id string) (*facts.Document, error) {
	key := r.getNamespaceKey(persistence.FACTS_PREFIX, id)
	val, err := r.clientFor(id).Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, persistence.NotFoundError{Id: id}
		}
		logger.Error("error in getting engagement facts", zap.String("engagement", id), zap.Error(err))
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return r.encoderDecoder.Decode([]byte(val))
}

func (r *redisFactStore) Delete(ctx context.Context, id string) error {
	key := r.getNamespaceKey(persistence.FACTS_PREFIX, id)
	n, err := r.clientFor(id).Del(ctx, key).Result()
	if err != nil {
		logger.Error("error in deleting engagement facts", zap.String("engagement", id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	if n == 0 {
		return persistence.NotFoundError{Id: id}
	}
	return nil
}
