package zip

import "errors"

// The edit layer: operations that round-trip through the injected
// Converter. Conversion failures are reported as errors, never coerced to
// absent locations.

// ErrNoConverter is returned by the value operations of a cursor built
// without WithConverter.
var ErrNoConverter = errors.New("zip: no converter configured")

// Value converts the subtree at the current location to its host-level
// value. Absent and virtual locations yield nil, nil.
func (l *Loc) Value() (any, error) {
	if l == nil || l.node == nil {
		return nil, nil
	}
	if l.opts.conv == nil {
		return nil, ErrNoConverter
	}
	return l.opts.conv.FromNode(l.node)
}

// ReplaceValue converts v to a node and substitutes it for the current
// subtree. An absent location stays absent.
func (l *Loc) ReplaceValue(v any) (*Loc, error) {
	if l == nil {
		return nil, nil
	}
	if l.opts.conv == nil {
		return nil, ErrNoConverter
	}
	n, err := l.opts.conv.ToNode(v)
	if err != nil {
		return nil, err
	}
	return l.ReplaceRaw(n), nil
}

// Edit converts the current subtree to its host value, applies f, and
// substitutes the converted result. Subtrees outside the current location
// are untouched.
func (l *Loc) Edit(f func(v any) (any, error)) (*Loc, error) {
	if l == nil {
		return nil, nil
	}
	v, err := l.Value()
	if err != nil {
		return nil, err
	}
	w, err := f(v)
	if err != nil {
		return nil, err
	}
	return l.ReplaceValue(w)
}
