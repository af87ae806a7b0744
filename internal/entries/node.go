// Package entries renders the recursive 5e.tools "entries" tree into plain text.
//
// Parse turns a gjson value into a closed set of Node types; Render walks the
// tree. Anything the renderer does not recognize parses to Unknown and renders
// to nothing.
package entries

import "github.com/tidwall/gjson"

// Node is one element of an entries tree. The set of implementations is
// closed: Text, Entries, Item, List, Table, Group and Unknown.
type Node interface {
	node()
}

// Text is a raw string, still carrying inline markup.
type Text string

// Entries is a named block of child nodes ("entries", "section").
type Entries struct {
	Name    Node
	Entry   Node
	Entries Node
}

// Item is a list member or spell reference ("item", "itemSpell").
type Item struct {
	Name    Node
	Entry   Node
	Entries Node
}

// List is a bulleted list; Style "list-hang..." drops the bullets.
type List struct {
	Name  Node
	Style string
	Items []Node
}

// Table is a caption plus a grid. Rows hold raw cell values.
type Table struct {
	Caption   Node
	ColLabels []string
	Rows      [][]gjson.Result
}

// Group is a bare array of nodes.
type Group []Node

// Unknown is anything the renderer ignores.
type Unknown struct{}

func (Text) node()    {}
func (Entries) node() {}
func (Item) node()    {}
func (List) node()    {}
func (Table) node()   {}
func (Group) node()   {}
func (Unknown) node() {}

// Parse builds a Node from a document value. Missing values parse to Unknown.
func Parse(value gjson.Result) Node {
	switch {
	case value.Type == gjson.String:
		return Text(value.Str)
	case value.IsArray():
		members := value.Array()
		group := make(Group, 0, len(members))
		for _, member := range members {
			group = append(group, Parse(member))
		}
		return group
	case value.IsObject():
		return parseObject(value)
	default:
		return Unknown{}
	}
}

func parseObject(value gjson.Result) Node {
	switch value.Get("type").String() {
	case "entries", "section":
		return Entries{
			Name:    Parse(value.Get("name")),
			Entry:   Parse(value.Get("entry")),
			Entries: Parse(value.Get("entries")),
		}
	case "item", "itemSpell":
		return Item{
			Name:    Parse(value.Get("name")),
			Entry:   Parse(value.Get("entry")),
			Entries: Parse(value.Get("entries")),
		}
	case "list":
		items := value.Get("items").Array()
		list := List{
			Name:  Parse(value.Get("name")),
			Style: value.Get("style").String(),
			Items: make([]Node, 0, len(items)),
		}
		for _, item := range items {
			list.Items = append(list.Items, Parse(item))
		}
		return list
	case "table":
		return parseTable(value)
	default:
		return Unknown{}
	}
}

func parseTable(value gjson.Result) Table {
	table := Table{Caption: Parse(value.Get("caption"))}

	for _, label := range value.Get("colLabels").Array() {
		table.ColLabels = append(table.ColLabels, label.String())
	}
	for _, row := range value.Get("rows").Array() {
		table.Rows = append(table.Rows, row.Array())
	}

	return table
}
