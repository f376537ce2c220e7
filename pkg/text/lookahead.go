package text

import "github.com/yaklabco/razorlex/pkg/source"

// LookaheadReader is a Reader that can read ahead speculatively and roll
// back. Lookaheads nest strictly last-in-first-out.
type LookaheadReader interface {
	Reader
	// CurrentLocation is the location of the next character to be read.
	CurrentLocation() source.Location
	// BeginLookahead saves the current position. Closing the returned
	// handle restores it unless the handle was accepted first.
	BeginLookahead() *Lookahead
	// CancelBacktrack discards the innermost saved position without
	// restoring it.
	CancelBacktrack()
}

// Lookahead is the scope of one speculative read. Typical use:
//
//	la := reader.BeginLookahead()
//	defer la.Close()
//	if matched {
//		la.Accept()
//	}
//
// A handle only ends while it is the innermost open lookahead; Close or
// Accept on an outer handle does nothing and may be repeated once the inner
// handles have ended.
type Lookahead struct {
	restore  func() bool
	commit   func() bool
	done     bool
	accepted bool
}

// newLookahead wraps the reader callbacks. Each reports whether it ended the
// lookahead.
func newLookahead(restore, commit func() bool) *Lookahead {
	return &Lookahead{restore: restore, commit: commit}
}

// Accept keeps everything read inside the lookahead.
func (l *Lookahead) Accept() {
	if l.done || (l.commit != nil && !l.commit()) {
		return
	}
	l.done = true
	l.accepted = true
}

// Close rolls the reader back unless Accept was called. It is safe to call
// more than once.
func (l *Lookahead) Close() {
	if l.done || (l.restore != nil && !l.restore()) {
		return
	}
	l.done = true
}

// Done reports whether the lookahead has ended.
func (l *Lookahead) Done() bool {
	return l.done
}

// Accepted reports whether Accept was called.
func (l *Lookahead) Accepted() bool {
	return l.accepted
}

// backtrackContext is the snapshot taken when a lookahead begins.
type backtrackContext struct {
	location source.Location
	position int
}

// backtrackStack holds open lookahead snapshots. Only the top entry may be
// restored; ending any other entry is a no-op.
type backtrackStack struct {
	contexts []*backtrackContext
}

func (s *backtrackStack) push(ctx *backtrackContext) {
	s.contexts = append(s.contexts, ctx)
}

func (s *backtrackStack) pop() {
	if len(s.contexts) > 0 {
		s.contexts[len(s.contexts)-1] = nil
		s.contexts = s.contexts[:len(s.contexts)-1]
	}
}

// popIfTop removes ctx when it is the innermost snapshot.
func (s *backtrackStack) popIfTop(ctx *backtrackContext) bool {
	if len(s.contexts) == 0 || s.contexts[len(s.contexts)-1] != ctx {
		return false
	}
	s.pop()
	return true
}

func (s *backtrackStack) empty() bool {
	return len(s.contexts) == 0
}

func (s *backtrackStack) depth() int {
	return len(s.contexts)
}
