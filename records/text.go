package records

import (
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Text ENTITIES 段的单行文字实体
type Text struct {
	Entity
	Value     string     // 组码 1，必填
	Style     string     // 组码 7，缺省 STANDARD
	Insertion core.Point // 组码 10/20/30，插入点
	Alignment core.Point // 组码 11/21/31，第二对齐点
	Height    float64    // 组码 40，字高
	RelXScale float64    // 组码 41，宽度因子，缺省 1.0
	Rotation  float64    // 组码 50
	Oblique   float64    // 组码 51，倾斜角
	TextFlags int16      // 组码 71，镜像标志
	HorJust   int16      // 组码 72，水平对齐
	VertJust  int16      // 组码 73，垂直对齐
	Extrusion core.Point // 组码 210/220/230，缺省 (0,0,1)
}

func (*Text) Type() string { return "TEXT" }

// textRules TEXT 专有字段的规则，接在公共属性块之后
var textRules = []schema.Rule[*Text]{
	{Code: 100, Emit: marker[*Text]("AcDbText")},
	{Code: 10, Name: "insertion_x",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Insertion.X = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			w.Float(10, t.Insertion.X)
		}},
	{Code: 20, Name: "insertion_y",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Insertion.Y = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			w.Float(20, t.Insertion.Y)
		}},
	{Code: 30, Name: "insertion_z",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Insertion.Z = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			w.Float(30, t.Insertion.Z)
		}},
	{Code: 40, Name: "height",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Height = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			w.Float(40, t.Height)
		}},
	{Code: 1, Name: "value",
		Set: func(t *Text, tag core.Tag) error {
			t.Value = tag.AsString()
			return nil
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			w.Tag(1, t.Value)
		}},
	{Code: 50, Name: "rotation",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Rotation = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Rotation != 0 {
				w.Float(50, t.Rotation)
			}
		}},
	{Code: 41, Name: "rel_x_scale",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.RelXScale = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.RelXScale != 1.0 {
				w.Float(41, t.RelXScale)
			}
		}},
	{Code: 51, Name: "oblique",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Oblique = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Oblique != 0 {
				w.Float(51, t.Oblique)
			}
		}},
	{Code: 7, Name: "style",
		Set: func(t *Text, tag core.Tag) error {
			// 空样式名静默落回缺省样式
			if name := tag.AsString(); name != "" {
				t.Style = name
			}
			return nil
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Style != schema.DefaultTextStyle {
				w.Tag(7, t.Style)
			}
		}},
	{Code: 71, Name: "text_flags",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Int16()
			t.TextFlags = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.TextFlags != 0 {
				w.Int16(71, t.TextFlags)
			}
		}},
	{Code: 72, Name: "hor_just",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Int16()
			t.HorJust = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.HorJust != 0 {
				w.Int16(72, t.HorJust)
			}
		}},
	{Code: 11, Name: "alignment_x",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Alignment.X = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			// 第二对齐点只在声明了对齐方式时有意义
			if t.HorJust != 0 || t.VertJust != 0 {
				w.Float(11, t.Alignment.X)
			}
		}},
	{Code: 21, Name: "alignment_y",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Alignment.Y = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.HorJust != 0 || t.VertJust != 0 {
				w.Float(21, t.Alignment.Y)
			}
		}},
	{Code: 31, Name: "alignment_z",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Alignment.Z = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.HorJust != 0 || t.VertJust != 0 {
				w.Float(31, t.Alignment.Z)
			}
		}},
	{Code: 210, Name: "extrusion_x",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Extrusion.X = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Extrusion != (core.Point{Z: 1}) {
				w.Float(210, t.Extrusion.X)
			}
		}},
	{Code: 220, Name: "extrusion_y",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Extrusion.Y = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Extrusion != (core.Point{Z: 1}) {
				w.Float(220, t.Extrusion.Y)
			}
		}},
	{Code: 230, Name: "extrusion_z",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Float()
			t.Extrusion.Z = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.Extrusion != (core.Point{Z: 1}) {
				w.Float(230, t.Extrusion.Z)
			}
		}},
	{Code: 73, Name: "vert_just",
		Set: func(t *Text, tag core.Tag) error {
			v, err := tag.Int16()
			t.VertJust = v
			return err
		},
		Emit: func(t *Text, w *core.Writer, v schema.Version) {
			if t.VertJust != 0 {
				w.Int16(73, t.VertJust)
			}
		}},
}

// TextSchema TEXT 的字段表：先公共属性块，再文字专有字段
var TextSchema = schema.Define(schema.Schema[*Text]{
	TypeName: "TEXT",
	Subclasses: []schema.Subclass{
		{Name: "AcDbEntity", Min: schema.SubclassMarkers},
		{Name: "AcDbText", Min: schema.SubclassMarkers},
	},
	Factory: func() *Text {
		return &Text{
			Entity:    newEntity(),
			Style:     schema.DefaultTextStyle,
			RelXScale: 1.0,
			Extrusion: core.Point{Z: 1},
		}
	},
	Required: func(t *Text) error {
		if t.Value == "" {
			return &core.FieldError{Type: "TEXT", Field: "value", Err: core.ErrMissingRequired}
		}
		return nil
	},
	Rules: append(entityRules[*Text](), textRules...),
})

func init() {
	Register("TEXT", func(s *core.Scanner, ver schema.Version) (Record, error) {
		t, err := codec.Decode(TextSchema, s, ver)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}
