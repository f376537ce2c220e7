package tree

import "errors"

// WalkFunc is called for each node. Return a non-nil error to stop the walk.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal starting at root.
func Walk(root Node, fn WalkFunc) error {
	return WalkWithContext(root, fn, nil)
}

// WalkWithContext calls enter before a node's children and leave after
// them. Either callback may be nil.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if isNil(root) {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	if block, ok := root.(*Block); ok {
		for _, child := range block.children {
			if err := WalkWithContext(child, enter, leave); err != nil {
				return err
			}
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns every node matching predicate in pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // The callback never fails.
	Walk(root, func(n Node) error {
		if predicate(n) {
			result = append(result, n)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching predicate, or nil.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected.
	Walk(root, func(n Node) error {
		if predicate(n) {
			found = n
			return errStopWalk
		}
		return nil
	})

	return found
}

// SpansOfKind returns every span of kind under root.
func SpansOfKind(root *Block, kind SpanKind) []*Span {
	var spans []*Span
	root.eachSpan(func(s *Span) bool {
		if s.kind == kind {
			spans = append(spans, s)
		}
		return true
	})
	return spans
}

var errStopWalk = errors.New("stop walk")
