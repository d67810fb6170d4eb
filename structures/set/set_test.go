package set

import (
	"github.com/stretchr/testify/assert"
	"sort"
	"testing"
)

func TestSet_Slice(t *testing.T) {
	set := New[string]()
	assert.Nil(t, set.Slice())
	set = New("a", "b")
	set.Add("c", "d")
	set.Remove("d", "e")

	slice := set.Slice()
	sort.Strings(slice)
	assert.Equal(t, []string{"a", "b", "c"}, slice)
}

func TestSet_Add_NilSet(t *testing.T) {
	var set Set[int]
	assert.False(t, set.Has(1))
	set = set.Add(1)
	assert.True(t, set.Has(1))
}

func TestSet_Insert(t *testing.T) {
	set := New[uint64]()
	assert.True(t, set.Insert(3), "First insert should report the value as new")
	assert.False(t, set.Insert(3), "Second insert should report the value as seen")
	assert.Len(t, set, 1)
}
