// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Comment collection and attachment. Comments are recorded during the parse
// keyed by byte offset, then attached to the nearest tree node once the
// stream has been fully parsed.

package pure

import "sort"

// Comment is a single "# ..." record from the source.
type Comment struct {
	Location Location
	Text     string

	// Inline is true when the '#' lies on a line that also contains node
	// content to its left.
	Inline bool
}

// commentCollector accumulates comments during a parse. Backtracking may
// revisit the same '#' several times, so records are keyed by their start
// offset with insert-if-absent semantics.
type commentCollector struct {
	byOffset map[int]*Comment
}

func newCommentCollector() *commentCollector {
	return &commentCollector{byOffset: make(map[int]*Comment)}
}

// Record stores a comment unless one was already recorded at the same
// offset. It returns the record and whether it was newly inserted.
func (c *commentCollector) Record(loc Location, text string, inline bool) (*Comment, bool) {
	if prev, ok := c.byOffset[loc.Start]; ok {
		return prev, false
	}
	rec := &Comment{Location: loc, Text: text, Inline: inline}
	c.byOffset[loc.Start] = rec
	return rec, true
}

// All returns every recorded comment in source order.
func (c *commentCollector) All() []*Comment {
	offsets := make([]int, 0, len(c.byOffset))
	for off := range c.byOffset {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)
	out := make([]*Comment, len(offsets))
	for i, off := range offsets {
		out[i] = c.byOffset[off]
	}
	return out
}

// Attach distributes every recorded comment onto the given document nodes.
// Each comment lands on exactly one node, as either a leading or a trailing
// comment.
//
// The walk runs a binary search over the current level's children, which are
// ordered by location. A child whose span contains the comment is
// descended into; children entirely before or after the comment narrow the
// search while remembering the nearest preceding and following nodes. Any
// other overlap cannot occur in a well-formed tree.
func (c *commentCollector) Attach(roots []*Node) {
	if len(roots) == 0 {
		return
	}
	for _, comment := range c.All() {
		attachComment(roots, comment)
	}
}

func attachComment(roots []*Node, comment *Comment) {
	level := roots
	var enclosing, preceding, following *Node

	for {
		var descend *Node
		lo, hi := 0, len(level)-1
		for lo <= hi {
			mid := (lo + hi) / 2
			cand := level[mid]
			switch {
			case cand.Location.Contains(comment.Location):
				descend = cand
				lo = hi + 1
			case cand.Location.Before(comment.Location):
				preceding = cand
				lo = mid + 1
			case cand.Location.After(comment.Location):
				following = cand
				hi = mid - 1
			default:
				Raise(&InternalError{Message: "comment overlaps a node boundary"})
			}
		}
		if descend == nil {
			break
		}
		enclosing = descend
		level = descend.Children
	}

	root := roots[0]
	if comment.Inline {
		if preceding != nil {
			preceding.Trailing = append(preceding.Trailing, comment)
			return
		}
		target := following
		if target == nil {
			target = enclosing
		}
		if target == nil {
			target = root
		}
		target.Leading = append(target.Leading, comment)
		return
	}

	switch {
	case following != nil:
		following.Leading = append(following.Leading, comment)
	case preceding != nil:
		preceding.Trailing = append(preceding.Trailing, comment)
	case enclosing != nil:
		enclosing.Leading = append(enclosing.Leading, comment)
	default:
		root.Leading = append(root.Leading, comment)
	}
}
