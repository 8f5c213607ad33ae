package shard

import (
	"fmt"
	"time"

	"bloomfundr-api/internal/config"
)

// Table returns the monthly shard table name for an id, like
// bf_order_202608_p0. Routing goes through the CRC32 strategy so every
// caller agrees on the shard index.
func Table(base string, ts time.Time, id uint64) string {
	n := uint32(config.C.Order.ShardsPerMonth)
	return NewShardEngine(base, n).GetTable(id, ts)
}

// AllTables returns every shard table for the month of ts.
func AllTables(base string, ts time.Time) []string {
	month := ts.Format("200601")
	n := config.C.Order.ShardsPerMonth
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("%s_%s_p%d", base, month, i))
	}
	return out
}
