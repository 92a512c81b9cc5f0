package uid

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates sortable int64 identifiers for database rows.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a Snowflake generator. The node number comes from the
// SNOWFLAKE_NODE environment variable and defaults to 0 for single-node
// deployments.
func NewSnowflake() (*Snowflake, error) {
	var nodeID int64
	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			nodeID = parsed
		}
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new snowflake ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
