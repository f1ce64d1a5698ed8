package ids

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var errInvalidNodeID = errors.New("invalid snowflake node id")

// Generator hands out time-ordered unique ids for tasks and loop items.
type Generator struct {
	node *snowflake.Node
}

// NewGenerator creates a generator bound to nodeID (0-1023).
func NewGenerator(nodeID int64) (*Generator, error) {
	if nodeID < 0 || nodeID > 1023 {
		return nil, fmt.Errorf("%w: %d", errInvalidNodeID, nodeID)
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

// Next returns a new id. Ids from one generator sort in creation order.
func (g *Generator) Next() string {
	return g.node.Generate().String()
}
