package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	id   string
	name string
}

func (e entry) EntityID() string { return e.id }

// ── Replace / Items ─────────────────────────────────────────────────────────

func TestList_ZeroValueEmpty(t *testing.T) {
	var list List[entry]

	assert.Empty(t, list.Items())
	assert.False(t, list.Loaded())
}

func TestList_ReplaceSetsSnapshot(t *testing.T) {
	var list List[entry]

	list.Replace([]entry{{id: "1"}, {id: "2"}})

	assert.True(t, list.Loaded())
	require.Len(t, list.Items(), 2)
	assert.Equal(t, "1", list.Items()[0].id)
}

// Last resync wins: a later Replace discards the earlier snapshot whole.
func TestList_ReplaceOverwrites(t *testing.T) {
	var list List[entry]
	list.Replace([]entry{{id: "1"}, {id: "2"}, {id: "3"}})

	list.Replace([]entry{{id: "9"}})

	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].id)
}

func TestList_ItemsReturnsCopy(t *testing.T) {
	var list List[entry]
	list.Replace([]entry{{id: "1", name: "before"}})

	items := list.Items()
	items[0].name = "after"

	assert.Equal(t, "before", list.Items()[0].name)
}

// ── RemoveLocal ─────────────────────────────────────────────────────────────

func TestRemoveLocal_FiltersById(t *testing.T) {
	var list List[entry]
	list.Replace([]entry{{id: "1"}, {id: "2"}, {id: "3"}})

	list.RemoveLocal("2")

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].id)
	assert.Equal(t, "3", items[1].id)
}

func TestRemoveLocal_UnknownIdLeavesSnapshot(t *testing.T) {
	var list List[entry]
	list.Replace([]entry{{id: "1"}, {id: "2"}})

	list.RemoveLocal("missing")

	assert.Len(t, list.Items(), 2)
}

func TestRemoveLocal_PreservesOrder(t *testing.T) {
	var list List[entry]
	list.Replace([]entry{{id: "a"}, {id: "b"}, {id: "c"}, {id: "d"}})

	list.RemoveLocal("a")
	list.RemoveLocal("c")

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].id)
	assert.Equal(t, "d", items[1].id)
}
