package wideint

// Ordering is the result of comparing two integers.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// Cmp compares x and y by magnitude, most significant chunk first.
func (x Uint[T]) Cmp(y Uint[T]) Ordering {
	x.mustMatch("cmp", y)
	for i := len(x.chunks) - 1; i >= 0; i-- {
		switch {
		case x.chunks[i] > y.chunks[i]:
			return Greater
		case x.chunks[i] < y.chunks[i]:
			return Less
		}
	}
	return Equal
}

func (x Uint[T]) Equal(y Uint[T]) bool          { return x.Cmp(y) == Equal }
func (x Uint[T]) Less(y Uint[T]) bool           { return x.Cmp(y) == Less }
func (x Uint[T]) LessOrEqual(y Uint[T]) bool    { return x.Cmp(y) != Greater }
func (x Uint[T]) Greater(y Uint[T]) bool        { return x.Cmp(y) == Greater }
func (x Uint[T]) GreaterOrEqual(y Uint[T]) bool { return x.Cmp(y) != Less }
