package idgen

import (
	"log"
	"os"
	"strconv"
)

// Init sets up the default node with an explicit node id.
func Init(nodeID int64) {
	if err := InitNode("default", nodeID); err != nil {
		log.Fatalf("[IDGen] InitNode failed: %v", err)
	}
}

// InitFromEnv reads the node id from SNOWFLAKE_NODE_ID, for multi-instance
// deployments. Defaults to node 1 when unset.
func InitFromEnv() {
	nodeIDStr := os.Getenv("SNOWFLAKE_NODE_ID")
	if nodeIDStr == "" {
		Init(1)
		return
	}
	nodeID, err := strconv.ParseInt(nodeIDStr, 10, 64)
	if err != nil || nodeID < 0 || nodeID > 1023 {
		log.Fatalf("[IDGen] Invalid SNOWFLAKE_NODE_ID: %v", nodeIDStr)
	}
	Init(nodeID)
	log.Printf("[IDGen] Snowflake node initialized: nodeID=%d", nodeID)
}
