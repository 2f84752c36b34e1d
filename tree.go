package formtree

import "fmt"

// Field is one key/value pair of an Object, in insertion order.
type Field struct {
	Key   string
	Value any
}

// Object is an object node of the decoded tree. It preserves first-insertion
// key order, which map[string]any cannot.
type Object struct {
	fields []Field
	index  map[string]int
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].Value, true
}

// Keys returns the field keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns the ordered key/value pairs.
func (o *Object) Fields() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

func (o *Object) put(key string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Array is an array node of the decoded tree. Explicit out-of-order indices
// pad the array with unset slots; set distinguishes those from assigned nil
// leaves. auto records the index style the array was created with.
type Array struct {
	elems []any
	set   []bool
	auto  bool
}

// Len returns the logical length, padding included.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at position i. ok is false for padded slots that
// were never assigned.
func (a *Array) At(i int) (any, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], a.set[i]
}

func (a *Array) grow(size int) {
	for len(a.elems) < size {
		a.elems = append(a.elems, nil)
		a.set = append(a.set, false)
	}
}

// insert walks segs from the root, materializing intermediate containers
// lazily, and assigns leaf at the position named by the last segment.
// Container kinds are carried by the node variants themselves (Object, Array
// plus its auto flag, anything else is a leaf), so conflict checks are a
// matter of inspecting the node found at each prefix.
func (root *Object) insert(segs []segment, leaf any) error {
	var cur any = root
	prefix := ""
	for i, seg := range segs {
		switch {
		case seg.isIndex:
			prefix += seg.String()
		case i == 0:
			prefix = seg.name
		default:
			prefix += "." + seg.name
		}

		if i == len(segs)-1 {
			return assign(cur, seg, prefix, leaf)
		}

		child, err := descend(cur, seg, segs[i+1], prefix)
		if err != nil {
			return err
		}
		cur = child
	}
	return nil
}

// descend resolves the child container for seg inside cur, creating it on
// first visit with the kind dictated by the following segment.
func descend(cur any, seg, next segment, prefix string) (any, error) {
	if seg.isIndex {
		arr := cur.(*Array)
		if arr.auto != seg.auto {
			return nil, mixedError(prefix)
		}
		idx := seg.index
		if seg.auto {
			idx = len(arr.elems)
		}
		arr.grow(idx + 1)
		if !arr.set[idx] {
			child := newContainer(next)
			arr.elems[idx] = child
			arr.set[idx] = true
			return child, nil
		}
		return verifyKind(arr.elems[idx], next, prefix)
	}

	obj := cur.(*Object)
	child, ok := obj.Get(seg.name)
	if !ok {
		child = newContainer(next)
		obj.put(seg.name, child)
		return child, nil
	}
	return verifyKind(child, next, prefix)
}

// assign sets leaf at the final segment's position inside cur.
func assign(cur any, seg segment, prefix string, leaf any) error {
	if seg.isIndex {
		arr := cur.(*Array)
		if arr.auto != seg.auto {
			return mixedError(prefix)
		}
		if seg.auto {
			arr.elems = append(arr.elems, leaf)
			arr.set = append(arr.set, true)
			return nil
		}
		arr.grow(seg.index + 1)
		if arr.set[seg.index] {
			return duplicateError(prefix)
		}
		arr.elems[seg.index] = leaf
		arr.set[seg.index] = true
		return nil
	}

	obj := cur.(*Object)
	if _, ok := obj.Get(seg.name); ok {
		return duplicateError(prefix)
	}
	obj.put(seg.name, leaf)
	return nil
}

// newContainer creates the container a segment descends into, typed by that
// segment: key segments nest into objects, index segments into arrays with
// the index style recorded at creation.
func newContainer(next segment) any {
	if next.isIndex {
		return &Array{auto: next.auto}
	}
	return &Object{}
}

// verifyKind checks that an existing node can be descended into with next.
// An Array's explicit/auto style is checked on the following step, once the
// index segment itself is consumed.
func verifyKind(child any, next segment, prefix string) (any, error) {
	switch c := child.(type) {
	case *Object:
		if next.isIndex {
			return nil, duplicateError(prefix)
		}
		return c, nil
	case *Array:
		if !next.isIndex {
			return nil, duplicateError(prefix)
		}
		return c, nil
	default:
		// Leaf already assigned at this prefix; it cannot be addressed further.
		return nil, duplicateError(prefix)
	}
}

func duplicateError(prefix string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateKey, prefix)
}

func mixedError(prefix string) error {
	return fmt.Errorf("%w: %q", ErrMixedArray, prefix)
}
