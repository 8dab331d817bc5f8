package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator issues booking identifiers.
type Generator interface {
	// NewID returns a unique 64-bit id and its short human-facing reference.
	NewID() (int64, string)
}

// SnowflakeGenerator implements Generator with Twitter Snowflake ids.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{
		node: node,
	}, nil
}

// NewID returns the id and its base32 form, which is what customers see as
// their booking reference.
func (g *SnowflakeGenerator) NewID() (int64, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.node.Generate()
	return id.Int64(), id.Base32()
}
