package records

import (
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Dictionary OBJECTS 段的 DICTIONARY 对象：一个命名条目指向一个对象句柄
type Dictionary struct {
	Base
	EntryName   string // 组码 3，必填
	EntryHandle string // 组码 350，条目指向的对象句柄
}

func (*Dictionary) Type() string { return "DICTIONARY" }

// DictionarySchema DICTIONARY 的字段表
var DictionarySchema = schema.Define(schema.Schema[*Dictionary]{
	TypeName: "DICTIONARY",
	Subclasses: []schema.Subclass{
		{Name: "AcDbDictionary", Min: schema.SubclassMarkers},
	},
	Factory: func() *Dictionary {
		return &Dictionary{}
	},
	Required: func(d *Dictionary) error {
		if d.EntryName == "" {
			return &core.FieldError{Type: "DICTIONARY", Field: "entry_name", Err: core.ErrMissingRequired}
		}
		return nil
	},
	Rules: []schema.Rule[*Dictionary]{
		{Code: 100, Emit: marker[*Dictionary]("AcDbDictionary")},
		{Code: 3, Name: "entry_name",
			Set: func(d *Dictionary, t core.Tag) error {
				d.EntryName = t.AsString()
				return nil
			},
			Emit: func(d *Dictionary, w *core.Writer, v schema.Version) {
				w.Tag(3, d.EntryName)
			}},
		{Code: 350, Name: "entry_handle",
			Set: func(d *Dictionary, t core.Tag) error {
				d.EntryHandle = t.AsString()
				return nil
			},
			Emit: func(d *Dictionary, w *core.Writer, v schema.Version) {
				if d.EntryHandle != "" {
					w.Tag(350, d.EntryHandle)
				}
			}},
	},
})

func init() {
	Register("DICTIONARY", func(s *core.Scanner, ver schema.Version) (Record, error) {
		d, err := codec.Decode(DictionarySchema, s, ver)
		if err != nil {
			return nil, err
		}
		return d, nil
	})
}
