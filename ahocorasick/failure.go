package ahocorasick

import "github.com/mtrevisan/Hunspeller-sub002/dat"

// link computes the failure state and the output set of every state.
//
// Nodes are visited breadth-first, so the failure state of a parent and the
// output set of every failure target are final before they are read. The
// output of a state lists its own key first, followed by the output of its
// failure state, i.e. longer matches before their suffixes.
func link(trie *dat.Trie, layout *dat.Layout) (next []int32, output [][]int32) {
	d := layout.DAT
	next = make([]int32, d.NStates())
	output = make([][]int32, d.NStates())
	for _, node := range trie.BreadthFirst() {
		if node == 0 {
			continue // root fails to itself
		}
		s := layout.Slots[node]
		parent := trie.Parent(node)
		f := int32(dat.Root)
		if parent != 0 {
			label := trie.Label(node)
			f = next[layout.Slots[parent]]
			for {
				if t, ok := d.Transition(uint32(f), label); ok {
					f = int32(t)
					break
				}
				if f == int32(dat.Root) {
					break
				}
				f = next[f]
			}
		}
		next[s] = f
		k := trie.Key(node)
		if k == dat.NoKey {
			output[s] = output[f] // shared, never modified
			continue
		}
		out := make([]int32, 0, 1+len(output[f]))
		out = append(out, int32(k))
		output[s] = append(out, output[f]...)
	}
	return next, output
}
