package shard

import (
	"fmt"
	"log"
	"time"
)

// ShardEngine routes rows of one logical table to its monthly shards.
type ShardEngine struct {
	BaseTable  string
	ShardCount uint32
	Strategy   ShardStrategy
}

func NewShardEngine(base string, count uint32) *ShardEngine {
	return &ShardEngine{
		BaseTable:  base,
		ShardCount: count,
		Strategy:   NewCRC32Strategy(count),
	}
}

// GetTable resolves the shard table for an order id and timestamp.
func (e *ShardEngine) GetTable(orderID uint64, t time.Time) string {
	if t.IsZero() || t.Year() < 2000 {
		log.Printf("[ShardEngine] invalid time %v, falling back to now", t)
		t = time.Now()
	}
	month := t.Format("200601")
	shard := e.Strategy.GetShard(orderID)
	return fmt.Sprintf("%s_%s_p%d", e.BaseTable, month, shard)
}
