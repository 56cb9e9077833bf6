package records

import (
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// ObjectPtr OBJECTS 段的 OBJECT_PTR 对象：除句柄与属主外只携带扩展数据。
// 扩展数据是 1001（应用名）与 1000（字符串值）混排的标签链，
// 组码随值一起保存，写出时原样还原。
type ObjectPtr struct {
	Base
	Xdata core.ScalarList[core.Tag] // 组码 1001/1000，按到达顺序链式存放
}

func (*ObjectPtr) Type() string { return "OBJECT_PTR" }

// appendXdata 1001 和 1000 共用的追加规则
func appendXdata(o *ObjectPtr, t core.Tag) error {
	o.Xdata.Append(core.Tag{Code: t.Code, Value: t.AsString()})
	return nil
}

// ObjectPtrSchema OBJECT_PTR 的字段表
var ObjectPtrSchema = schema.Define(schema.Schema[*ObjectPtr]{
	TypeName: "OBJECT_PTR",
	Subclasses: []schema.Subclass{
		{Name: "AcDbObjectPtr", Min: schema.SubclassMarkers},
	},
	Factory: func() *ObjectPtr {
		return &ObjectPtr{}
	},
	Rules: []schema.Rule[*ObjectPtr]{
		{Code: 100, Emit: marker[*ObjectPtr]("AcDbObjectPtr")},
		{Code: 1001, Name: "xdata", Repeat: true,
			Set: appendXdata,
			Emit: func(o *ObjectPtr, w *core.Writer, v schema.Version) {
				for x := range o.Xdata.All() {
					w.Tag(x.Code, x.Value)
				}
			}},
		{Code: 1000, Name: "xdata", Repeat: true,
			Set: appendXdata},
	},
})

func init() {
	Register("OBJECT_PTR", func(s *core.Scanner, ver schema.Version) (Record, error) {
		o, err := codec.Decode(ObjectPtrSchema, s, ver)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}
