package redis

import (
	"github.com/buraksezer/consistent"
	rd "github.com/go-redis/redis/v9"
	"github.com/spaolacci/murmur3"
)

type hasher struct{}

func (h hasher) Sum64(data []byte) uint64 {
	return murmur3.Sum64(data)
}

type node struct {
	addr   string
	client rd.UniversalClient
}

func (n node) String() string {
	return n.addr
}

// Ring picks the redis node owning an engagement id.
type Ring struct {
	hring *consistent.Consistent
	nodes []node
}

func NewRing(conf Config) *Ring {
	partitionCount := conf.PartitionCount
	if partitionCount <= 0 {
		partitionCount = 271
	}
	cfg := consistent.Config{
		PartitionCount:    partitionCount,
		ReplicationFactor: 20,
		Load:              1.25,
		Hasher:            hasher{},
	}
	nodes := make([]node, 0, len(conf.Addrs))
	members := make([]consistent.Member, 0, len(conf.Addrs))
	for _, addr := range conf.Addrs {
		n := node{
			addr: addr,
			client: rd.NewUniversalClient(&rd.UniversalOptions{
				Addrs:    []string{addr},
				Password: conf.Password,
				PoolSize: conf.PoolSize,
			}),
		}
		nodes = append(nodes, n)
		members = append(members, n)
	}
	return &Ring{
		hring: consistent.New(members, cfg),
		nodes: nodes,
	}
}

func (r *Ring) Locate(key string) node {
	return r.hring.LocateKey([]byte(key)).(node)
}

func (r *Ring) Nodes() []node {
	return r.nodes
}

func (r *Ring) Close() error {
	var firstErr error
	for _, n := range r.nodes {
		if err := n.client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
