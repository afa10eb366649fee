package draw

import (
	"fmt"

	"github.com/routescope/routescope/pkg/arch"
	"github.com/routescope/routescope/pkg/rrg"
)

// UnmappedSideError reports a pin coordinate lookup for a side on which
// the pin does not physically exist. It signals a mismatch between the
// block type's pin placement table and the node's recorded location, i.e.
// a bug in the upstream graph builder; it is never recovered silently.
type UnmappedSideError struct {
	Node rrg.NodeID
	Pin  int
	Side arch.Side
}

func (e *UnmappedSideError) Error() string {
	return fmt.Sprintf("pin %d of node %d is not mapped to side %s", e.Pin, e.Node, e.Side)
}
