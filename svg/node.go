// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"
	"maps"
	"reflect"
	"strings"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"github.com/jinzhu/copier"
)

// Node is the interface for all SVG nodes, which are elements
// in the document tree. The core functionality is defined on
// [NodeBase], which all node types embed; use [Node.AsNodeBase]
// to access it.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// Init is called when the node is first created, before it is
	// added to a parent. It sets the defaults for the node, such as
	// the identity transform.
	Init()

	// SVGName returns the SVG element name (e.g., "rect", "path" etc).
	SVGName() string

	// EnforceSVGName returns true if in general this element should
	// be named with its SVGName plus a unique id.
	// Groups are false.
	EnforceSVGName() bool

	// CopyFieldsFrom copies the fields of the node from the given node.
	// By default, it is [NodeBase.CopyFieldsFrom], which automatically
	// does a deep copy of all of the fields that do not have a
	// `copier:"-"` struct tag. Node types only implement a custom
	// version when they have fields that need special handling.
	CopyFieldsFrom(from Node)
}

// NodeValue is an interface that all non-pointer node value types
// satisfy, used as the type constraint for [New]. Pointer nodes
// satisfy [Node] instead.
type NodeValue interface {

	// NodeValue should only be implemented by [NodeBase],
	// and it should not be called.
	NodeValue()
}

// NodeValue implements [NodeValue]. It should not be called.
func (n NodeBase) NodeValue() {}

// NodeBase is the base type for all elements within an SVG tree.
// It implements the [Node] interface and contains the tree structure
// and the attributes common to all elements.
type NodeBase struct {

	// Name is the name of this element, which is its id attribute
	// in the XML representation. It must be unique within the document;
	// see [SVG.NodeEnsureUniqueID].
	Name string `copier:"-"`

	// Class contains user-defined class name(s) used primarily for
	// attaching CSS styles to different display elements.
	// Multiple class names can be used to combine properties;
	// use spaces to separate per css standard.
	Class string

	// This is the value of this node as its true underlying type,
	// which enables calling virtual functions defined on node types
	// directly on this base type. It is automatically set during
	// [InitNode], and it is nil after [NodeBase.Destroy].
	This Node `copier:"-" json:"-" xml:"-"`

	// Parent is the parent of this node, which is nil for the root
	// element of the document.
	Parent Node `copier:"-" json:"-" xml:"-"`

	// Children is the list of children of this node.
	Children []Node `copier:"-" json:"-" xml:"-"`

	// Properties are the XML attributes of this element beyond the
	// standard id, class and transform, including presentation style
	// properties exploded from the style attribute, and dialect
	// attributes stored under their prefixed name, such as
	// "inkscape:groupmode". See [NodeBase.StyleProperties].
	Properties map[string]any `copier:"-" json:",omitempty" xml:"-"`

	// Transform is the transform of this element relative to its
	// parent, from the transform XML attribute. It defaults to the
	// identity transform. See [NodeBase.ParentTransform] for the
	// fully composed version.
	Transform math32.Matrix2

	// CSS is the cascading style sheet at this level.
	// These styles apply here and to everything below, until superceded.
	// Use .class and #name Properties elements to apply entire styles
	// to given elements, and type for element type.
	CSS map[string]any `json:",omitempty" xml:"css"`

	// isDef is whether this node is under [SVG.Defs].
	isDef bool
}

func (n *NodeBase) AsNodeBase() *NodeBase { return n }

func (n *NodeBase) SVGName() string { return "base" }

func (n *NodeBase) EnforceSVGName() bool { return true }

func (n *NodeBase) Init() {
	n.Transform = math32.Identity2()
}

// String implements the [fmt.Stringer] interface by returning
// the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// SetName sets the name (id) of this node.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// Path returns the path to this node from the document root,
// using node names separated by / delimiters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsNodeBase().Path() + "/" + n.Name
	}
	return "/" + n.Name
}

// IsDef returns whether this node is under the document [SVG.Defs].
func (n *NodeBase) IsDef() bool { return n.isDef }

// NewInstance returns a new uninitialized instance of this node type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// InitNode initializes the node, setting [NodeBase.This] and calling
// [Node.Init] if it has not already been initialized.
func InitNode(n Node) {
	nb := n.AsNodeBase()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// SetParent sets the parent of the given child node to the given
// parent node. It does not add the child to the parent's list of
// children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	child.AsNodeBase().Parent = parent
}

// New returns a new node of the given type, adding it to the given
// optional parent. For example:
//
//	p := svg.New[svg.Path](parent)
func New[T NodeValue](parent ...Node) *T {
	n := new(T)
	ni := any(n).(Node)
	InitNode(ni)
	if len(parent) > 0 {
		parent[0].AsNodeBase().AddChild(ni)
	}
	return n
}

//////// Children

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index,
// or nil if the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name (id),
// and nil if none does.
func (n *NodeBase) ChildByName(name string) Node {
	for _, k := range n.Children {
		if k.AsNodeBase().Name == name {
			return k
		}
	}
	return nil
}

// IndexInParent returns our index within our parent node,
// and -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	for i, k := range n.Parent.AsNodeBase().Children {
		if k == n.This {
			return i
		}
	}
	return -1
}

// AddChild adds the given child at the end of the children list.
// The child node is assumed to not be on another tree, and the
// existing name should be unique among children.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds the given child at the given position in the
// children list.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	if index >= len(n.Children) {
		n.Children = append(n.Children, kid)
	} else {
		n.Children = append(n.Children, nil)
		copy(n.Children[index+1:], n.Children[index:])
		n.Children[index] = kid
	}
	SetParent(kid, n.This)
}

// DeleteChildAt deletes the child at the given index. It returns false
// if there is no child at that index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = append(n.Children[:index], n.Children[index+1:]...)
	child.AsNodeBase().Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	for i, k := range n.Children {
		if k == child || k == child.AsNodeBase().This {
			return n.DeleteChildAt(i)
		}
	}
	return false
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0]
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.AsNodeBase().Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys it.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.Destroy()
	} else {
		n.Parent.AsNodeBase().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys this node and all
// of its children.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

//////// Properties

// SetProperty sets the given property to the given value.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (n *NodeBase) DeleteProperty(key string) {
	if n.Properties == nil {
		return
	}
	delete(n.Properties, key)
}

// SetTransformProperty sets the "transform" property from the
// current value of [NodeBase.Transform], so that it is saved
// in the XML representation.
func (n *NodeBase) SetTransformProperty() {
	n.SetProperty("transform", n.Transform.String())
}

// StyleProperties returns the presentation style properties of this
// node: all properties except the transform and the dialect-prefixed
// attributes such as "inkscape:groupmode". These are the declarations
// that form the style attribute in the XML representation.
func (n *NodeBase) StyleProperties() map[string]any {
	props := map[string]any{}
	for k, v := range n.Properties {
		if k == "transform" || strings.Contains(k, ":") {
			continue
		}
		props[k] = v
	}
	return props
}

//////// Tree walking

const (
	// Continue = true can be returned from tree iteration functions to
	// continue processing down the tree, as compared to Break = false
	// which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to
	// stop processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on this node and all of its
// children in depth-first order. It stops walking the current branch
// of the tree if the function returns [Break] and keeps walking if
// it returns [Continue]. The walk function must not delete nodes.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		if kid == nil || kid.AsNodeBase().This == nil {
			continue
		}
		kid.AsNodeBase().WalkDown(fun)
	}
}

// WalkDownNoDefs does [NodeBase.WalkDown] on the given node,
// automatically filtering [MetaData] and elements under defs,
// i.e., it only processes concrete graphical nodes.
func WalkDownNoDefs(n Node, fun func(sn Node, snb *NodeBase) bool) {
	n.AsNodeBase().WalkDown(func(cn Node) bool {
		snb := cn.AsNodeBase()
		_, md := cn.(*MetaData)
		if snb.isDef || md {
			return Break
		}
		return fun(cn, snb)
	})
}

// FirstNonGroupNode returns the first item that is not a group,
// recursing into groups until a non-group item is found.
func FirstNonGroupNode(n Node) Node {
	var ngn Node
	WalkDownNoDefs(n, func(sn Node, snb *NodeBase) bool {
		if _, isgp := sn.(*Group); isgp {
			return Continue
		}
		ngn = sn
		return Break
	})
	return ngn
}

//////// Transforms

// ParentTransform returns the full compounded 2D transform matrix for
// all of the parents of this node. If self is true, then include our
// own transform too. This is the "composed transform" of the node:
// the matrix mapping its local coordinates into document coordinates.
func (n *NodeBase) ParentTransform(self bool) math32.Matrix2 {
	pars := []Node{}
	xf := math32.Identity2()
	cur := n.This
	for {
		if cur.AsNodeBase().Parent == nil {
			break
		}
		cur = cur.AsNodeBase().Parent
		pars = append(pars, cur)
	}
	np := len(pars)
	if np > 0 {
		xf = pars[np-1].AsNodeBase().Transform
	}
	for i := np - 2; i >= 0; i-- {
		xf.SetMul(pars[i].AsNodeBase().Transform)
	}
	if self {
		xf.SetMul(n.Transform)
	}
	return xf
}

//////// Deep copy

// CopyFrom copies the data and children of the given node to this node.
// Only copying to the same type is supported. The struct field tag
// copier:"-" can be added for any fields that should not be copied.
// See [Node.CopyFieldsFrom] for more information on field copying.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("svg.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	fb := from.AsNodeBase()
	if fb.Properties != nil {
		if n.Properties == nil {
			n.Properties = map[string]any{}
		}
		maps.Copy(n.Properties, fb.Properties)
	}
	n.This.CopyFieldsFrom(from)
	n.DeleteChildren()
	for _, kid := range fb.Children {
		n.AddChild(kid.AsNodeBase().Clone())
	}
}

// Clone creates and returns a deep copy of the tree from this node down,
// including the node names (ids); the copy is not added to a parent.
// See [SVG.NodeEnsureUniqueID] for re-assigning ids after cloning within
// the same document.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsNodeBase().SetName(n.Name)
	nc.AsNodeBase().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node,
// using [copier.CopyWithOption] for a deep copy of all fields that do
// not have a `copier:"-"` struct tag.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsNodeBase().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("svg.NodeBase.CopyFieldsFrom", "err", err)
	}
}
