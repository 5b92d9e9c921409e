package ir

// ExprList is an owning, intrusive, doubly-linked sequence of
// expressions. Append, prepend and splice are O(1); there is no random
// indexing. A node belongs to at most one list at a time.
type ExprList struct {
	front *Expr
	back  *Expr
	size  int
}

func (l *ExprList) Empty() bool { return l.size == 0 }
func (l *ExprList) Len() int    { return l.size }

// Front returns the first node, or nil for an empty list.
func (l *ExprList) Front() *Expr { return l.front }

// Back returns the last node, or nil for an empty list.
func (l *ExprList) Back() *Expr { return l.back }

// PushBack appends e.
func (l *ExprList) PushBack(e *Expr) {
	e.prev = l.back
	e.next = nil
	if l.back != nil {
		l.back.next = e
	} else {
		l.front = e
	}
	l.back = e
	l.size++
}

// PushFront prepends e.
func (l *ExprList) PushFront(e *Expr) {
	e.next = l.front
	e.prev = nil
	if l.front != nil {
		l.front.prev = e
	} else {
		l.back = e
	}
	l.front = e
	l.size++
}

// SpliceBack moves every node of other onto the end of l, leaving
// other empty. The nodes keep their identity.
func (l *ExprList) SpliceBack(other *ExprList) {
	if other.size == 0 {
		return
	}
	if l.size == 0 {
		*l = *other
	} else {
		l.back.next = other.front
		other.front.prev = l.back
		l.back = other.back
		l.size += other.size
	}
	*other = ExprList{}
}

// SpliceFront moves every node of other onto the start of l, leaving
// other empty.
func (l *ExprList) SpliceFront(other *ExprList) {
	if other.size == 0 {
		return
	}
	if l.size == 0 {
		*l = *other
	} else {
		other.back.next = l.front
		l.front.prev = other.back
		l.front = other.front
		l.size += other.size
	}
	*other = ExprList{}
}

// Each calls yield for every node in order, stopping early on false.
func (l *ExprList) Each(yield func(*Expr) bool) {
	for e := l.front; e != nil; e = e.next {
		if !yield(e) {
			return
		}
	}
}
