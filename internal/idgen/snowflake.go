package idgen

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	nodeMap sync.Map // map[string]*snowflake.Node
)

// InitNode initializes a named snowflake node.
func InitNode(name string, nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("InitNode failed: %w", err)
	}
	nodeMap.Store(name, n)
	return nil
}

// NewFrom generates an id from the named node.
func NewFrom(name string) uint64 {
	val, ok := nodeMap.Load(name)
	if !ok {
		panic(fmt.Sprintf("snowflake node not initialized: %s", name))
	}
	return uint64(val.(*snowflake.Node).Generate().Int64())
}

// New generates an id from the default node.
func New() uint64 {
	return NewFrom("default")
}

// TimeOf recovers the creation timestamp embedded in an id. Used to
// resolve which monthly order shard an order id lives in.
func TimeOf(id uint64) time.Time {
	return time.UnixMilli(snowflake.ID(id).Time())
}
