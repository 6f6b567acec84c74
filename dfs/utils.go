// Package dfs provides small helpers over node orders.
package dfs

import "github.com/katalvlaran/lvgrad/core"

// IndexOf returns the first index of n in s, comparing by identity,
// or -1 if not found.
// Time Complexity: O(len(s)).
func IndexOf(s []*core.Node, n *core.Node) int {
	for i, x := range s {
		if x == n {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(len(s)).
func Reverse(s []*core.Node) []*core.Node {
	out := make([]*core.Node, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
