package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/records"
)

func dict(name, handle string) *records.Dictionary {
	d := records.DictionarySchema.Factory()
	d.EntryName = name
	d.EntryHandle = handle
	return d
}

func TestGetEntry(t *testing.T) {
	var dicts core.RecordList[*records.Dictionary]
	dicts.Append(dict("ACAD_GROUP", "2B"))
	dicts.Append(dict("ACAD_LAYOUT", "2C"))

	assert.Equal(t, "2B", GetEntry(&dicts, "ACAD_GROUP"))
	assert.Equal(t, "2C", GetEntry(&dicts, "ACAD_LAYOUT"))
	assert.Equal(t, "", GetEntry(&dicts, "ACAD_MATERIAL"))

	assert.Len(t, GetEntries(&dicts), 2)
}

func text(value, layer string, x, y, height float64) *records.Text {
	t := records.TextSchema.Factory()
	t.Value = value
	t.LayerName = layer
	t.Insertion = core.Point{X: x, Y: y}
	t.Height = height
	return t
}

func TestTextsOnLayer(t *testing.T) {
	var texts core.RecordList[*records.Text]
	texts.Append(text("a", "TK", 0, 0, 2.5))
	texts.Append(text("b", "BZ", 0, 0, 2.5))
	texts.Append(text("c", "TK", 0, 0, 2.5))

	var got []string
	for _, x := range TextsOnLayer(&texts, "TK") {
		got = append(got, x.Value)
	}
	assert.Equal(t, []string{"a", "c"}, got)
}

// 先从上到下，同一行（Y 差在字高以内）从左到右
func TestSortTexts(t *testing.T) {
	list := []*records.Text{
		text("right", "0", 50, 100.5, 2.5),
		text("below", "0", 0, 80, 2.5),
		text("left", "0", 10, 100, 2.5),
	}

	SortTexts(list)

	assert.Equal(t, "left", list[0].Value)
	assert.Equal(t, "right", list[1].Value)
	assert.Equal(t, "below", list[2].Value)
}
