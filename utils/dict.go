package utils

import (
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/records"
)

// GetEntries 把字典链表压成 条目名 -> 对象句柄 的映射
func GetEntries(dicts *core.RecordList[*records.Dictionary]) map[string]string {
	var entries = make(map[string]string)
	for d := range dicts.All() {
		entries[d.EntryName] = d.EntryHandle
	}

	return entries
}

// GetEntry 按条目名查对象句柄，查不到返回空串
func GetEntry(dicts *core.RecordList[*records.Dictionary], name string) string {
	return GetEntries(dicts)[name]
}
