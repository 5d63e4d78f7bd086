package ordered

import (
	"testing"

	"github.com/fatih-iver/Storage-Manager/model"
	"github.com/stretchr/testify/assert"
)

func TestRecords_Put(t *testing.T) {
	rs := NewRecords(0)

	assert.True(t, rs.Put(&model.Record{Key: 3, FieldValues: []int64{3, 30}}))
	assert.True(t, rs.Put(&model.Record{Key: -1, FieldValues: []int64{-1}}))
	assert.True(t, rs.Put(&model.Record{Key: 2, FieldValues: []int64{2, 20}}))
	assert.Equal(t, 3, rs.Size())

	assert.Equal(t, [][]int64{{-1}, {2, 20}, {3, 30}}, rs.Values())
}

func TestRecords_PutReplace(t *testing.T) {
	rs := NewRecords(2)

	assert.True(t, rs.Put(&model.Record{Key: 5, FieldValues: []int64{5, 10}}))
	assert.False(t, rs.Put(&model.Record{Key: 5, FieldValues: []int64{5, 99}}))
	assert.Equal(t, 1, rs.Size())
	assert.Equal(t, [][]int64{{5, 99}}, rs.Values())
}

func TestRecords_Empty(t *testing.T) {
	rs := NewRecords(32)
	assert.Equal(t, 0, rs.Size())
	assert.Empty(t, rs.Values())
}

func TestNames(t *testing.T) {
	ns := NewNames(32)
	for _, name := range []string{"zeta", "Beta", "alpha", "beta"} {
		assert.True(t, ns.Put(name))
	}
	assert.False(t, ns.Put("alpha"))

	assert.Equal(t, 4, ns.Size())
	assert.Equal(t, []string{"Beta", "alpha", "beta", "zeta"}, ns.Values())
}
