package diag

// SegmentKind discriminates the variant an attribute path Segment holds.
type SegmentKind int

const (
	AttributeName SegmentKind = iota
	ElementKeyString
	ElementKeyInt
)

// Segment is one step of a Path, addressing either a named attribute or an
// element of a collection.
type Segment struct {
	Kind SegmentKind
	Name string
	Int  int64
}

// Path is an ordered sequence of Segment, addressing a location inside a
// value tree. A nil Path is the root.
type Path []Segment

// RootPath is the empty path, addressing the whole value.
func RootPath() Path { return nil }

// WithAttributeName returns a new Path with an AttributeName segment
// appended. The receiver is left unmodified.
func (p Path) WithAttributeName(name string) Path {
	return appendSegment(p, Segment{Kind: AttributeName, Name: name})
}

// WithElementKeyString returns a new Path with an ElementKeyString segment
// appended.
func (p Path) WithElementKeyString(key string) Path {
	return appendSegment(p, Segment{Kind: ElementKeyString, Name: key})
}

// WithElementKeyInt returns a new Path with an ElementKeyInt segment
// appended.
func (p Path) WithElementKeyInt(key int64) Path {
	return appendSegment(p, Segment{Kind: ElementKeyInt, Int: key})
}

func appendSegment(p Path, seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}
