package records

import (
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Region ENTITIES 段的 REGION 实体。几何本体是建模内核的私有数据，
// 以文本行的形式原样透传：组码 1 为数据行，超长行用组码 3 续行，
// 两条链按到达顺序保持，不解释内容。
type Region struct {
	Entity
	ProprietaryData core.ScalarList[string] // 组码 1
	AdditionalData  core.ScalarList[string] // 组码 3，续行
	ModelerVersion  int16                   // 组码 70，建模格式版本，缺省 1
}

func (*Region) Type() string { return "REGION" }

// regionRules REGION 专有字段的规则
var regionRules = []schema.Rule[*Region]{
	{Code: 100, Emit: marker[*Region]("AcDbModelerGeometry")},
	{Code: 70, Name: "modeler_version",
		Set: func(r *Region, t core.Tag) error {
			v, err := t.Int16()
			r.ModelerVersion = v
			return err
		},
		Emit: func(r *Region, w *core.Writer, v schema.Version) {
			w.Int16(70, r.ModelerVersion)
		}},
	{Code: 1, Name: "proprietary_data", Repeat: true,
		Set: func(r *Region, t core.Tag) error {
			r.ProprietaryData.Append(t.AsString())
			return nil
		},
		Emit: func(r *Region, w *core.Writer, v schema.Version) {
			for line := range r.ProprietaryData.All() {
				w.Tag(1, line)
			}
		}},
	{Code: 3, Name: "additional_proprietary_data", Repeat: true,
		Set: func(r *Region, t core.Tag) error {
			r.AdditionalData.Append(t.AsString())
			return nil
		},
		Emit: func(r *Region, w *core.Writer, v schema.Version) {
			for line := range r.AdditionalData.All() {
				w.Tag(3, line)
			}
		}},
}

// RegionSchema REGION 的字段表
var RegionSchema = schema.Define(schema.Schema[*Region]{
	TypeName: "REGION",
	Subclasses: []schema.Subclass{
		{Name: "AcDbEntity", Min: schema.SubclassMarkers},
		{Name: "AcDbModelerGeometry", Min: schema.SubclassMarkers},
	},
	Factory: func() *Region {
		return &Region{
			Entity:         newEntity(),
			ModelerVersion: 1,
		}
	},
	Rules: append(entityRules[*Region](), regionRules...),
})

func init() {
	Register("REGION", func(s *core.Scanner, ver schema.Version) (Record, error) {
		r, err := codec.Decode(RegionSchema, s, ver)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}
