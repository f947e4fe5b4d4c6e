// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Representation of Go values as node trees for the emitter. Repeated
// objects are detected by identity and replaced with aliases.

package pure

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Representer walks a Go value and builds the node tree the emitter
// writes. The identity maps live for a single Represent call.
type Representer struct {
	// Aliases permits repeated objects to be emitted as anchors and
	// aliases. When false, a repeated object raises a *BadAliasError.
	Aliases bool

	// Safe restricts the walk to plain data: maps, slices, strings,
	// numbers, booleans, nil, and time values.
	Safe bool

	seen   map[uintptr]*Node
	nextID int
}

// Represent converts v into a document node.
func (r *Representer) Represent(v any) (doc *Node, err error) {
	defer HandleErr(&err)
	r.seen = make(map[uintptr]*Node)
	r.nextID = 0
	root := r.represent(reflect.ValueOf(v))
	return &Node{Kind: DocumentNode, Children: []*Node{root}, ImplicitStart: true, ImplicitEnd: true}, nil
}

func (r *Representer) represent(v reflect.Value) *Node {
	if !v.IsValid() {
		return scalarNode("null", PlainStyle)
	}
	if n, ok := v.Interface().(*Node); ok && n != nil {
		return n
	}
	if t, ok := v.Interface().(time.Time); ok {
		return scalarNode(t.Format(time.RFC3339Nano), DoubleQuotedStyle)
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return scalarNode("null", PlainStyle)
		}
		if v.Kind() == reflect.Pointer {
			if alias := r.aliasFor(v.Pointer()); alias != nil {
				return alias
			}
			return r.tracked(v.Pointer(), func() *Node { return r.represent(v.Elem()) })
		}
		return r.represent(v.Elem())
	case reflect.Bool:
		return scalarNode(strconv.FormatBool(v.Bool()), PlainStyle)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalarNode(strconv.FormatInt(v.Int(), 10), PlainStyle)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalarNode(strconv.FormatUint(v.Uint(), 10), PlainStyle)
	case reflect.Float32, reflect.Float64:
		return scalarNode(formatFloat(v.Float()), PlainStyle)
	case reflect.String:
		return stringNode(v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			n := scalarNode(base64.StdEncoding.EncodeToString(v.Bytes()), DoubleQuotedStyle)
			n.Tag = BinaryTag
			return n
		}
		if v.IsNil() {
			return scalarNode("null", PlainStyle)
		}
		if alias := r.aliasFor(v.Pointer()); alias != nil {
			return alias
		}
		return r.tracked(v.Pointer(), func() *Node { return r.representSequence(v) })
	case reflect.Array:
		return r.representSequence(v)
	case reflect.Map:
		if v.IsNil() {
			return scalarNode("null", PlainStyle)
		}
		if alias := r.aliasFor(v.Pointer()); alias != nil {
			return alias
		}
		return r.tracked(v.Pointer(), func() *Node { return r.representMapping(v) })
	case reflect.Struct:
		if r.Safe {
			Raise(&DisallowedError{Kind: "type", Name: v.Type().String()})
		}
		return r.representStruct(v)
	default:
		Raise(&EmitterError{Message: fmt.Sprintf("cannot marshal type %s", v.Type())})
		return nil
	}
}

// aliasFor returns an alias node when the object identified by ptr has
// already been represented, forcing an anchor onto the original node.
func (r *Representer) aliasFor(ptr uintptr) *Node {
	target, ok := r.seen[ptr]
	if !ok {
		return nil
	}
	if !r.Aliases {
		Raise(&BadAliasError{Anchor: target.Anchor})
	}
	if target.Anchor == "" {
		r.nextID++
		target.Anchor = strconv.Itoa(r.nextID)
	}
	return &Node{Kind: AliasNode, Value: target.Anchor, Target: target}
}

// tracked registers the node for ptr before its children are built, so
// that cyclic references become aliases rather than infinite recursion.
func (r *Representer) tracked(ptr uintptr, build func() *Node) *Node {
	placeholder := &Node{}
	r.seen[ptr] = placeholder
	node := build()
	// A cycle back to ptr may already have forced an anchor onto the
	// placeholder; keep it so the aliases still resolve.
	anchor := placeholder.Anchor
	*placeholder = *node
	if placeholder.Anchor == "" {
		placeholder.Anchor = anchor
	}
	r.seen[ptr] = placeholder
	return placeholder
}

func (r *Representer) representSequence(v reflect.Value) *Node {
	node := &Node{Kind: SequenceNode}
	for i := 0; i < v.Len(); i++ {
		node.Children = append(node.Children, r.represent(v.Index(i)))
	}
	return node
}

func (r *Representer) representMapping(v reflect.Value) *Node {
	type pair struct {
		key, value *Node
	}
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{r.represent(iter.Key()), r.represent(iter.Value())})
	}
	// Map iteration order is random; sort for deterministic output.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key.Value < pairs[j].key.Value })
	node := &Node{Kind: MappingNode}
	for _, pr := range pairs {
		node.Children = append(node.Children, pr.key, pr.value)
	}
	return node
}

func (r *Representer) representStruct(v reflect.Value) *Node {
	node := &Node{Kind: MappingNode}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		key := strings.ToLower(field.Name)
		if tag := field.Tag.Get("yaml"); tag != "" {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}
		node.Children = append(node.Children, stringNode(key), r.represent(v.Field(i)))
	}
	return node
}

func scalarNode(value string, style ScalarStyle) *Node {
	return &Node{Kind: ScalarNode, Value: value, Style: style}
}

// stringNode picks a faithful style for an arbitrary string: literal for
// multi-line text, quoting when a plain rendering would resolve to
// something else, plain otherwise.
func stringNode(s string) *Node {
	switch {
	case strings.Contains(s, "\n"):
		return scalarNode(s, LiteralStyle)
	case needsQuoting(s):
		return scalarNode(s, DoubleQuotedStyle)
	default:
		return scalarNode(s, PlainStyle)
	}
}

// needsQuoting reports whether a plain rendering of s would be re-read as
// a different value or fail to parse.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if resolvePlain(s, false) != any(s) {
		return true
	}
	return unsafePlain(s)
}

// unsafePlain reports whether s cannot be written as a plain scalar for
// purely syntactic reasons, regardless of how it would resolve.
func unsafePlain(s string) bool {
	if s == "" {
		return true
	}
	b := s[0]
	if isIndicator(b) && !(b == '-' || b == '?' || b == ':') {
		return true
	}
	if (b == '-' || b == '?' || b == ':') && (len(s) == 1 || isBlank(s[1])) {
		return true
	}
	if strings.HasPrefix(s, "---") || strings.HasPrefix(s, "...") {
		return true
	}
	if isBlank(s[0]) || isBlank(s[len(s)-1]) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == 0x7f {
			return true
		}
		if c == ':' && (i+1 == len(s) || isBlank(s[i+1])) {
			return true
		}
		if c == '#' && i > 0 && isBlank(s[i-1]) {
			return true
		}
	}
	return false
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
