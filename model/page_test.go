package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePage_Capacity(t *testing.T) {
	tp := NewTypePage()
	for i := 0; i < MaxPageEntries; i++ {
		td, err := NewTypeDescriptor(fmt.Sprintf("t%d", i), []string{"a"})
		require.Nil(t, err)
		assert.True(t, tp.Add(td))
	}
	assert.True(t, tp.IsFull())

	td, err := NewTypeDescriptor("extra", nil)
	require.Nil(t, err)
	assert.False(t, tp.Add(td))
	assert.Equal(t, MaxPageEntries, tp.Len())
	assert.Nil(t, tp.Search("extra"))
}

func TestTypePage_SearchDelete(t *testing.T) {
	tp := NewTypePage()
	for _, name := range []string{"a", "b", "c"} {
		td, err := NewTypeDescriptor(name, []string{"x", "y"})
		require.Nil(t, err)
		assert.True(t, tp.Add(td))
	}

	td := tp.Search("b")
	require.NotNil(t, td)
	assert.Equal(t, []string{"x", "y"}, td.FieldNames)
	assert.Nil(t, tp.Search("d"))

	assert.True(t, tp.Delete("b"))
	assert.False(t, tp.Delete("b"))
	assert.Equal(t, 2, tp.Len())
	assert.Equal(t, "a", tp.Types[0].Name)
	assert.Equal(t, "c", tp.Types[1].Name)
}

func TestRecordPage_Capacity(t *testing.T) {
	rp := NewRecordPage()
	for i := 0; i < MaxPageEntries; i++ {
		r, err := NewRecord([]int64{int64(i), 1})
		require.Nil(t, err)
		assert.True(t, rp.Add(r))
	}

	r, err := NewRecord([]int64{99})
	require.Nil(t, err)
	assert.False(t, rp.Add(r))
	assert.Equal(t, MaxPageEntries, rp.Len())
	assert.Nil(t, rp.Search(99))
}

func TestRecordPage_SearchDelete(t *testing.T) {
	rp := NewRecordPage()
	for _, key := range []int64{5, -3, 7} {
		r, err := NewRecord([]int64{key, key * 10})
		require.Nil(t, err)
		assert.True(t, rp.Add(r))
	}

	r := rp.Search(-3)
	require.NotNil(t, r)
	assert.Equal(t, []int64{-3, -30}, r.FieldValues)

	assert.True(t, rp.Delete(5))
	assert.False(t, rp.Delete(5))
	assert.Nil(t, rp.Search(5))
	assert.Equal(t, 2, rp.Len())

	// a full page frees a slot after delete
	for rp.Add(&Record{Key: 100, FieldValues: []int64{100}, IsValid: true}) {
	}
	assert.True(t, rp.Delete(7))
	assert.False(t, rp.IsFull())
}

func TestRecordPage_SkipsInvalid(t *testing.T) {
	rp := NewRecordPage()
	rp.Add(&Record{Key: 1, FieldValues: []int64{1}, IsValid: false})

	assert.Nil(t, rp.Search(1))
	assert.False(t, rp.Delete(1))
}
