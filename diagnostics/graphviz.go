// Package diagnostics renders the portion of a GameNode tree a search
// actually visited as a Graphviz DOT graph, a debugging aid for inspecting
// which nodes a search actually touched.
package diagnostics

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/thowell332/parallel-chess-agent/game"
)

const rootGraphName = "G"

// DumpTree renders root and every already-expanded descendant as a DOT
// graph. It never calls node.Children(); nodes the search never touched
// (root.Expanded() == false, or any descendant the same) are rendered as
// leaves even if they have unexplored legal replies, since forcing their
// expansion here would misrepresent what the search actually visited.
func DumpTree(root *game.GameNode) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(rootGraphName); err != nil {
		return "", errors.Wrap(err, "diagnostics: setting graph name")
	}
	if err := graph.SetDir(true); err != nil {
		return "", errors.Wrap(err, "diagnostics: setting graph direction")
	}

	ids := make(map[*game.GameNode]string)
	if err := addNode(graph, root, ids, nextID(ids)); err != nil {
		return "", err
	}
	if err := walk(graph, root, ids); err != nil {
		return "", err
	}
	return graph.String(), nil
}

func nextID(ids map[*game.GameNode]string) string {
	return fmt.Sprintf("n%d", len(ids))
}

func addNode(graph *gographviz.Graph, n *game.GameNode, ids map[*game.GameNode]string, id string) error {
	ids[n] = id
	label := n.LastMove().String()
	attrs := map[string]string{"label": fmt.Sprintf("%q", label)}
	if err := graph.AddNode(rootGraphName, id, attrs); err != nil {
		return errors.Wrapf(err, "diagnostics: adding node %s", id)
	}
	return nil
}

func walk(graph *gographviz.Graph, n *game.GameNode, ids map[*game.GameNode]string) error {
	for _, child := range n.ExpandedChildren() {
		id, seen := ids[child]
		if !seen {
			id = nextID(ids)
			if err := addNode(graph, child, ids, id); err != nil {
				return err
			}
		}
		if err := graph.AddEdge(ids[n], id, true, nil); err != nil {
			return errors.Wrapf(err, "diagnostics: adding edge %s -> %s", ids[n], id)
		}
		if err := walk(graph, child, ids); err != nil {
			return err
		}
	}
	return nil
}
