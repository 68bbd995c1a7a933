package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/persistence"
	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/util"
	"github.com/stretchr/testify/require"
)

func TestRingLocate(t *testing.T) {
	ring := NewRing(Config{Addrs: []string{"localhost:6379", "localhost:6380", "localhost:6381"}})
	defer ring.Close()

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		key := fmt.Sprintf("eng-%d", i)
		n := ring.Locate(key)
		require.Equal(t, n.addr, ring.Locate(key).addr)
		seen[n.addr] = true
	}
	require.Len(t, seen, 3)
}

func TestFactStore(t *testing.T) {
	conf := Config{
		Addrs:     []string{"localhost:6379"},
		Namespace: "test",
	}
	store := NewRedisFactStore(conf, util.NewJsonEncoderDecoder[facts.Document]())
	defer store.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := store.Connect(ctx); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}

	for scenario, fn := range map[string]func(
		t *testing.T, store *redisFactStore,
	){
		"save and get":       testSaveGet,
		"missing engagement": testMissing,
		"delete":             testDelete,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t, store)
		})
	}
}

func testSaveGet(t *testing.T, store *redisFactStore) {
	ctx := context.Background()
	attest := true
	doc := facts.Document{
		Id:            "redis-eng-1",
		CurrentStepId: step.Draft,
		Facts: facts.Engagement{
			IsAttest:           &attest,
			JobRoles:           []facts.JobRole{{RoleId: facts.RoleBiller}},
			BillToClientNumber: facts.NewClientNumber("0"),
			Answers:            map[string]facts.Answer{"usedInCapitalRaising": facts.Yes},
		},
	}
	require.NoError(t, store.Save(ctx, doc))
	got, err := store.Get(ctx, doc.Id)
	require.NoError(t, err)
	require.Equal(t, doc, *got)
	require.NoError(t, store.Delete(ctx, doc.Id))
}

func testMissing(t *testing.T, store *redisFactStore) {
	_, err := store.Get(context.Background(), "redis-missing")
	var notFound persistence.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func testDelete(t *testing.T, store *redisFactStore) {
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, facts.Document{Id: "redis-eng-2"}))
	require.NoError(t, store.Delete(ctx, "redis-eng-2"))
	err := store.Delete(ctx, "redis-eng-2")
	var notFound persistence.NotFoundError
	require.True(t, errors.As(err, &notFound))
}
