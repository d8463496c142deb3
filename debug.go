package overlay

import (
	"fmt"
	"os"
)

// globalDebug enables invariant checks in node tree operations. Toggled with
// SetDebugMode; off by default so release builds skip the checks entirely.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth warnings are printed to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called when debug mode is on.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("overlay debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
// Sprite images nest at most aux items under a sprite under a layer, so any
// deep chain indicates a reparenting bug.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[overlay] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
