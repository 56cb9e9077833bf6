package utils

import (
	"sort"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/records"
)

// TextsOnLayer 过滤出某一图层上的全部文字
func TextsOnLayer(texts *core.RecordList[*records.Text], layer string) []*records.Text {
	var result []*records.Text
	for t := range texts.All() {
		if t.LayerName == layer {
			result = append(result, t)
		}
	}

	return result
}

// SortTexts 按人类阅读顺序排序：先从上到下，同一行内从左到右。
// 行的判定用字高做容差（同一行的插入点 Y 差不会超过一个字高）。
func SortTexts(texts []*records.Text) {
	sort.Slice(texts, func(i, j int) bool {
		var tolerance = texts[i].Height
		if texts[j].Height > tolerance {
			tolerance = texts[j].Height
		}

		di := texts[i].Insertion.Y - texts[j].Insertion.Y
		if di > tolerance || di < -tolerance {
			return texts[i].Insertion.Y > texts[j].Insertion.Y
		}
		return texts[i].Insertion.X < texts[j].Insertion.X
	})
}
