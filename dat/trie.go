package dat

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateKey is returned when a key is inserted twice.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrEmptyKey is returned for a key of length 0.
	ErrEmptyKey = errors.New("empty key")
)

// NoKey marks a trie node which does not end a key.
const NoKey = -1

type trieNode struct {
	parent   int32
	label    uint16 // code id of the edge from parent; 0 for the root
	depth    int32
	key      int32 // key index, NoKey if not terminal
	children map[uint16]int32
}

// Trie is the naive character trie assembled before encoding.
// Nodes live in an arena and are addressed by int32 ids; node 0 is the root.
type Trie struct {
	nodes     []trieNode
	keyLength []int32
	keyNodes  []int32 // terminal node per key index
	Alphabet  Alphabet
}

// NewTrie creates a trie holding only the root node.
func NewTrie() *Trie {
	return &Trie{
		nodes: []trieNode{{parent: -1, key: NoKey}},
	}
}

// Insert adds key to the trie and returns its key index. Key indices are
// assigned in insertion order, starting at 0.
func (t *Trie) Insert(key []rune) (int, error) {
	if len(key) == 0 {
		return NoKey, ErrEmptyKey
	}
	n := int32(0)
	for _, r := range key {
		code, err := t.Alphabet.Register(r)
		if err != nil {
			return NoKey, err
		}
		child, ok := t.nodes[n].children[code]
		if !ok {
			child = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{
				parent: n,
				label:  code,
				depth:  t.nodes[n].depth + 1,
				key:    NoKey,
			})
			if t.nodes[n].children == nil {
				t.nodes[n].children = make(map[uint16]int32)
			}
			t.nodes[n].children[code] = child
		}
		n = child
	}
	if t.nodes[n].key != NoKey {
		return NoKey, fmt.Errorf("%w: %q", ErrDuplicateKey, string(key))
	}
	index := int32(len(t.keyLength))
	t.nodes[n].key = index
	t.keyLength = append(t.keyLength, int32(len(key)))
	t.keyNodes = append(t.keyNodes, n)
	return int(index), nil
}

// Keys returns the number of keys inserted.
func (t *Trie) Keys() int { return len(t.keyLength) }

// NodeCount returns the number of nodes, including the root.
func (t *Trie) NodeCount() int { return len(t.nodes) }

// KeyLengths returns the rune length of every key, indexed by key index.
func (t *Trie) KeyLengths() []int32 { return t.keyLength }

// Parent returns the parent of node n, -1 for the root.
func (t *Trie) Parent(n int32) int32 { return t.nodes[n].parent }

// Label returns the code id on the edge into node n.
func (t *Trie) Label(n int32) uint16 { return t.nodes[n].label }

// Depth returns the distance of node n from the root.
func (t *Trie) Depth(n int32) int { return int(t.nodes[n].depth) }

// Key returns the key index ending at node n, or NoKey.
func (t *Trie) Key(n int32) int { return int(t.nodes[n].key) }

// Child returns the child of n on code id label.
func (t *Trie) Child(n int32, label uint16) (int32, bool) {
	c, ok := t.nodes[n].children[label]
	return c, ok
}

// Labels returns the code ids of n's outgoing edges in ascending order.
func (t *Trie) Labels(n int32) []uint16 {
	children := t.nodes[n].children
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// Path returns the node ids from the root down to the terminal node of key
// index k, root included.
func (t *Trie) Path(k int) []int32 {
	n := t.keyNodes[k]
	path := make([]int32, t.nodes[n].depth+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = n
		n = t.nodes[n].parent
	}
	return path
}

// BreadthFirst returns all node ids in breadth-first order, children visited
// in ascending label order. Every node appears after its parent and after all
// nodes of smaller depth.
func (t *Trie) BreadthFirst() []int32 {
	queue := make([]int32, 1, len(t.nodes))
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		for _, label := range t.Labels(n) {
			queue = append(queue, t.nodes[n].children[label])
		}
	}
	return queue
}
