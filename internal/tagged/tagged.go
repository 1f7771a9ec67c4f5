// Package tagged is the conventional interpreter: terms are trees of
// tagged nodes, and evaluation inspects each tag at run time.
package tagged

import (
	"fmt"
	"strconv"
)

// Value is the result of evaluating a node.
type Value interface {
	isValue()
	String() string
}

// Int is an integer value.
type Int int32

// Bool is a boolean value.
type Bool bool

func (Int) isValue()  {}
func (Bool) isValue() {}

func (v Int) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

// Node is a term of the expression language.
type Node interface {
	Eval() Value
}

// Lit is a literal value.
type Lit struct {
	Value Value
}

// Add is the sum of two integer nodes.
type Add struct {
	Left, Right Node
}

// If selects Then or Else by Cond. Both branches are evaluated.
type If struct {
	Cond, Then, Else Node
}

func (n *Lit) Eval() Value { return n.Value }

func (n *Add) Eval() Value {
	return asInt(n.Left.Eval()) + asInt(n.Right.Eval())
}

func (n *If) Eval() Value {
	cond, ok := n.Cond.Eval().(Bool)
	if !ok {
		panic("tagged: only bools can be the condition")
	}
	then, els := n.Then.Eval(), n.Else.Eval()
	if cond {
		return then
	}
	return els
}

func asInt(v Value) Int {
	n, ok := v.(Int)
	if !ok {
		panic(fmt.Sprintf("tagged: can only add ints, got %s", v))
	}
	return n
}

// NewInt returns an integer literal node.
func NewInt(n int32) Node { return &Lit{Value: Int(n)} }

// NewBool returns a boolean literal node.
func NewBool(b bool) Node { return &Lit{Value: Bool(b)} }

// NewAdd returns an addition node.
func NewAdd(a, b Node) Node { return &Add{Left: a, Right: b} }

// NewIf returns a conditional node.
func NewIf(c, a, b Node) Node { return &If{Cond: c, Then: a, Else: b} }
