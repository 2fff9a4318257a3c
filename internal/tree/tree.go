// Package tree turns YAML text into a small tagged node tree so callers can
// inspect a notebook document without probing untyped maps.
package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind 节点类型
type Kind int

const (
	Null Kind = iota
	Mapping
	Sequence
	Scalar
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a Mapping, kept in document order.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a parsed YAML value. Only the fields matching Kind are set.
type Node struct {
	Kind    Kind
	Tag     string // scalar tag, e.g. "!!str", "!!int"
	Value   string // scalar text
	Items   []*Node
	Entries []Entry
	Line    int
}

var nullNode = &Node{Kind: Null}

// MaxNodes 是别名展开后文档允许的最大逻辑节点数
const MaxNodes = 1 << 20

// Parse 解析 YAML 文本，返回根节点。空输入返回 Null 节点。
//
// 自引用的锚点和展开后超过 MaxNodes 的文档返回错误。
// 同一锚点的所有别名共享一个 *Node，调用方不得修改返回的树。
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nullNode, nil
	}
	b := &builder{
		active:  make(map[*yaml.Node]bool),
		anchors: make(map[*yaml.Node]built),
	}
	root, _, err := b.build(&doc)
	return root, err
}

type built struct {
	node   *Node
	weight int
}

// builder 记录正在构建的节点（检测环）和已构建的锚点（别名复用）
type builder struct {
	active  map[*yaml.Node]bool
	anchors map[*yaml.Node]built
}

func (b *builder) build(n *yaml.Node) (*Node, int, error) {
	if n.Anchor != "" {
		if c, ok := b.anchors[n]; ok {
			return c.node, c.weight, nil
		}
	}

	b.active[n] = true
	node, weight, err := b.buildNode(n)
	delete(b.active, n)
	if err != nil {
		return nil, 0, err
	}
	if weight > MaxNodes {
		return nil, 0, fmt.Errorf("line %d: document exceeds %d nodes after alias expansion", n.Line, MaxNodes)
	}

	if n.Anchor != "" {
		b.anchors[n] = built{node: node, weight: weight}
	}
	return node, weight, nil
}

func (b *builder) buildNode(n *yaml.Node) (*Node, int, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nullNode, 1, nil
		}
		return b.build(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nullNode, 1, nil
		}
		if b.active[n.Alias] {
			return nil, 0, fmt.Errorf("line %d: alias %q refers to itself", n.Line, n.Value)
		}
		return b.build(n.Alias)
	case yaml.ScalarNode:
		tag := n.ShortTag()
		if tag == "!!null" {
			return &Node{Kind: Null, Line: n.Line}, 1, nil
		}
		return &Node{Kind: Scalar, Tag: tag, Value: n.Value, Line: n.Line}, 1, nil
	case yaml.SequenceNode:
		out := &Node{Kind: Sequence, Items: make([]*Node, 0, len(n.Content)), Line: n.Line}
		weight := 1
		for _, child := range n.Content {
			item, w, err := b.build(child)
			if err != nil {
				return nil, 0, err
			}
			if weight += w; weight > MaxNodes {
				return nil, 0, fmt.Errorf("line %d: document exceeds %d nodes after alias expansion", n.Line, MaxNodes)
			}
			out.Items = append(out.Items, item)
		}
		return out, weight, nil
	case yaml.MappingNode:
		out := &Node{Kind: Mapping, Entries: make([]Entry, 0, len(n.Content)/2), Line: n.Line}
		seen := make(map[string]struct{}, len(n.Content)/2)
		weight := 1
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				continue
			}
			if _, dup := seen[keyNode.Value]; dup {
				return nil, 0, fmt.Errorf("line %d: duplicated mapping key %q", keyNode.Line, keyNode.Value)
			}
			seen[keyNode.Value] = struct{}{}

			value, w, err := b.build(n.Content[i+1])
			if err != nil {
				return nil, 0, err
			}
			if weight += w + 1; weight > MaxNodes {
				return nil, 0, fmt.Errorf("line %d: document exceeds %d nodes after alias expansion", n.Line, MaxNodes)
			}
			out.Entries = append(out.Entries, Entry{Key: keyNode.Value, Value: value})
		}
		return out, weight, nil
	default:
		return nullNode, 1, nil
	}
}

// Get 返回 mapping 中 key 对应的值。非 mapping 或缺失的 key 返回 Null 节点，从不返回 nil。
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != Mapping {
		return nullNode
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nullNode
}

// Path follows a chain of mapping keys.
func (n *Node) Path(keys ...string) *Node {
	cur := n
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// IsNull reports whether the node is absent or an explicit null.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == Null
}

// Truthy 判断标量是否为"真"：非空字符串、非零数字、true。
// Mapping、Sequence 和 Null 均视为缺失。
func (n *Node) Truthy() bool {
	if n == nil || n.Kind != Scalar {
		return false
	}
	switch n.Tag {
	case "!!bool":
		return strings.EqualFold(n.Value, "true")
	case "!!int":
		v, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
		if err != nil {
			return n.Value != ""
		}
		return v != 0
	case "!!float":
		lower := strings.ToLower(n.Value)
		if lower == ".nan" {
			return false
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
		if err != nil {
			return n.Value != ""
		}
		return v != 0 && !math.IsNaN(v)
	default:
		return n.Value != ""
	}
}

// Text returns the literal text of a scalar, or "" for any other kind.
func (n *Node) Text() string {
	if n == nil || n.Kind != Scalar {
		return ""
	}
	return n.Value
}
