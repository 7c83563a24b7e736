package layout

import (
	"fmt"

	"github.com/google/uuid"

	"folio/common"
)

// IDGenerator produces element ids unique within generator lifetime.
// Implementations are not required to be safe for concurrent use.
type IDGenerator interface {
	NextID(prefix string) string
}

// Counter is a deterministic monotonic id generator, same input always
// produces the same ids.
type Counter struct {
	n uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) NextID(prefix string) string {
	c.n++
	return fmt.Sprintf("el-%s-%d", prefix, c.n)
}

// UUIDs produces time ordered random ids (UUID v7), suitable when elements
// from several runs end up in the same project.
type UUIDs struct{}

func (UUIDs) NextID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 could only fail when system random source is broken
		id = uuid.New()
	}
	return "el-" + prefix + "-" + id.String()
}

// NewIDGenerator returns fresh generator for requested scheme.
func NewIDGenerator(scheme common.IDScheme) IDGenerator {
	if scheme == common.IDSchemeUuid {
		return UUIDs{}
	}
	return NewCounter()
}
