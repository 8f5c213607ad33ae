package shard

import (
	"fmt"
	"hash/crc32"
)

// ShardStrategy maps an order id to a shard index.
type ShardStrategy interface {
	GetShard(orderID uint64) int
}

// CRC32ShardStrategy hashes the order id with CRC32.
type CRC32ShardStrategy struct {
	ShardCount uint32
}

func NewCRC32Strategy(count uint32) *CRC32ShardStrategy {
	return &CRC32ShardStrategy{ShardCount: count}
}

func (s *CRC32ShardStrategy) GetShard(orderID uint64) int {
	hash := crc32.ChecksumIEEE([]byte(fmt.Sprintf("%d", orderID)))
	return int(hash % s.ShardCount)
}
