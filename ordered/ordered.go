// Package ordered collects scan results into sorted order.
package ordered

import (
	"github.com/fatih-iver/Storage-Manager/model"

	"github.com/google/btree"
)

const defaultDegree = 32

// recordItem implement the btree.Item interface
type recordItem struct {
	record *model.Record
}

func (i *recordItem) Less(than btree.Item) bool {
	return i.record.Key < than.(*recordItem).record.Key
}

// Records keeps records ascending by key, a later record replaces an earlier one with the same key.
type Records struct {
	tree *btree.BTree
}

func NewRecords(degree int) *Records {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &Records{tree: btree.New(degree)}
}

func (rs *Records) Put(record *model.Record) bool {
	return rs.tree.ReplaceOrInsert(&recordItem{record: record}) == nil
}

func (rs *Records) Size() int {
	return rs.tree.Len()
}

// Values return the field values of every record ordered by key
func (rs *Records) Values() [][]int64 {
	values := make([][]int64, 0, rs.tree.Len())
	rs.tree.Ascend(func(item btree.Item) bool {
		values = append(values, item.(*recordItem).record.FieldValues)
		return true
	})
	return values
}

type nameItem string

func (i nameItem) Less(than btree.Item) bool {
	return i < than.(nameItem)
}

// Names keeps type names in lexicographic order.
type Names struct {
	tree *btree.BTree
}

func NewNames(degree int) *Names {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &Names{tree: btree.New(degree)}
}

func (ns *Names) Put(name string) bool {
	return ns.tree.ReplaceOrInsert(nameItem(name)) == nil
}

func (ns *Names) Size() int {
	return ns.tree.Len()
}

func (ns *Names) Values() []string {
	names := make([]string, 0, ns.tree.Len())
	ns.tree.Ascend(func(item btree.Item) bool {
		names = append(names, string(item.(nameItem)))
		return true
	})
	return names
}
