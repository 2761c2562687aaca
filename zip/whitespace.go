package zip

// Whitespace-aware navigation: each public movement is its Raw counterpart
// composed with Skip over the insignificant predicate, so callers only ever
// land on significant locations. All return nil when no significant
// location exists in the requested direction.

func (l *Loc) Right() *Loc {
	return Skip((*Loc).RightRaw, insignificant, l.RightRaw())
}

func (l *Loc) Left() *Loc {
	return Skip((*Loc).LeftRaw, insignificant, l.LeftRaw())
}

// Down enters the children and skips forward past any leading whitespace
// or comments.
func (l *Loc) Down() *Loc {
	return Skip((*Loc).RightRaw, insignificant, l.DownRaw())
}

// Up exits to the parent. The leftward skip afterwards normalizes the
// result should the parent ever be a formatting node; in well-formed trees
// parents are branches and the skip is inert.
func (l *Loc) Up() *Loc {
	return Skip((*Loc).LeftRaw, insignificant, l.UpRaw())
}

func (l *Loc) Next() *Loc {
	return Skip((*Loc).NextRaw, insignificant, l.NextRaw())
}

func (l *Loc) Prev() *Loc {
	return Skip((*Loc).PrevRaw, insignificant, l.PrevRaw())
}

func (l *Loc) Leftmost() *Loc {
	return Skip((*Loc).RightRaw, insignificant, l.LeftmostRaw())
}

func (l *Loc) Rightmost() *Loc {
	return Skip((*Loc).LeftRaw, insignificant, l.RightmostRaw())
}
