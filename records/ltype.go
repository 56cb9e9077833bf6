package records

import (
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Linetype TABLES 段的 LTYPE 表记录。
//
// 各可重复字段（49/74/75/340/46/50/44/45/9）按元素下标一一对应：
// 第 i 个虚线长度对应第 i 个复杂元素标志、第 i 个比例……这是格式本身的
// 约定（各组码独立重复、靠出现顺序对齐），解码和编码都按到达顺序保持，
// 不做任何"修复"。
type Linetype struct {
	Base
	Name         string  // 组码 2，必填
	Description  string  // 组码 3
	Flag         int16   // 组码 70，标准标志位
	Alignment    int16   // 组码 72，恒为 65（字母 A）
	ElementCount int16   // 组码 73
	TotalLength  float64 // 组码 40，图案总长

	DashLengths  core.ScalarList[float64] // 组码 49
	ElementTypes core.ScalarList[int16]   // 组码 74，复杂元素类型 0-5
	ShapeNumbers core.ScalarList[int16]   // 组码 75
	StyleHandles core.ScalarList[string]  // 组码 340，文字样式句柄
	Scales       core.ScalarList[float64] // 组码 46
	Rotations    core.ScalarList[float64] // 组码 50
	OffsetsX     core.ScalarList[float64] // 组码 44
	OffsetsY     core.ScalarList[float64] // 组码 45
	Texts        core.ScalarList[string]  // 组码 9，文字元素内容
}

func (*Linetype) Type() string { return "LTYPE" }

// appendRule 可重复标量组码的通用解码规则
func appendRule[T any](code int, name string, list func(*Linetype) *core.ScalarList[T], parse func(core.Tag) (T, error)) schema.Rule[*Linetype] {
	return schema.Rule[*Linetype]{
		Code: code, Name: name, Repeat: true,
		Set: func(lt *Linetype, t core.Tag) error {
			v, err := parse(t)
			if err != nil {
				return err
			}
			list(lt).Append(v)
			return nil
		},
	}
}

// LinetypeSchema LTYPE 的字段表。可重复组码只声明解码规则，
// 编码由 Elements 钩子按元素交错输出。
var LinetypeSchema = schema.Define(schema.Schema[*Linetype]{
	TypeName: "LTYPE",
	Subclasses: []schema.Subclass{
		{Name: "AcDbSymbolTableRecord", Min: schema.SubclassMarkers},
		{Name: "AcDbLinetypeTableRecord", Min: schema.SubclassMarkers},
	},
	Factory: func() *Linetype {
		return &Linetype{
			Alignment: schema.LinetypeAlignment,
		}
	},
	Required: func(lt *Linetype) error {
		if lt.Name == "" {
			return &core.FieldError{Type: "LTYPE", Field: "name", Err: core.ErrMissingRequired}
		}
		return nil
	},
	Rules: []schema.Rule[*Linetype]{
		{Code: 100, Emit: marker[*Linetype]("AcDbSymbolTableRecord")},
		{Code: 100, Emit: marker[*Linetype]("AcDbLinetypeTableRecord")},
		{Code: 2, Name: "name",
			Set: func(lt *Linetype, t core.Tag) error {
				lt.Name = t.AsString()
				return nil
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Tag(2, lt.Name)
			}},
		{Code: 70, Name: "flag",
			Set: func(lt *Linetype, t core.Tag) error {
				f, err := t.Int16()
				lt.Flag = f
				return err
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Int16(70, lt.Flag)
			}},
		{Code: 3, Name: "description",
			Set: func(lt *Linetype, t core.Tag) error {
				lt.Description = t.AsString()
				return nil
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Tag(3, lt.Description)
			}},
		{Code: 72, Name: "alignment",
			Set: func(lt *Linetype, t core.Tag) error {
				a, err := t.Int16()
				lt.Alignment = a
				return err
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Int16(72, lt.Alignment)
			}},
		{Code: 73, Name: "element_count",
			Set: func(lt *Linetype, t core.Tag) error {
				n, err := t.Int16()
				lt.ElementCount = n
				return err
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Int16(73, lt.ElementCount)
			}},
		{Code: 40, Name: "total_length",
			Set: func(lt *Linetype, t core.Tag) error {
				l, err := t.Float()
				lt.TotalLength = l
				return err
			},
			Emit: func(lt *Linetype, w *core.Writer, v schema.Version) {
				w.Float(40, lt.TotalLength)
			}},
		appendRule(49, "dash_length", func(lt *Linetype) *core.ScalarList[float64] { return &lt.DashLengths }, core.Tag.Float),
		appendRule(74, "element_type", func(lt *Linetype) *core.ScalarList[int16] { return &lt.ElementTypes }, core.Tag.Int16),
		appendRule(75, "shape_number", func(lt *Linetype) *core.ScalarList[int16] { return &lt.ShapeNumbers }, core.Tag.Int16),
		appendRule(340, "style_handle", func(lt *Linetype) *core.ScalarList[string] { return &lt.StyleHandles },
			func(t core.Tag) (string, error) { return t.AsString(), nil }),
		appendRule(46, "scale", func(lt *Linetype) *core.ScalarList[float64] { return &lt.Scales }, core.Tag.Float),
		appendRule(50, "rotation", func(lt *Linetype) *core.ScalarList[float64] { return &lt.Rotations }, core.Tag.Float),
		appendRule(44, "offset_x", func(lt *Linetype) *core.ScalarList[float64] { return &lt.OffsetsX }, core.Tag.Float),
		appendRule(45, "offset_y", func(lt *Linetype) *core.ScalarList[float64] { return &lt.OffsetsY }, core.Tag.Float),
		appendRule(9, "text", func(lt *Linetype) *core.ScalarList[string] { return &lt.Texts },
			func(t core.Tag) (string, error) { return t.AsString(), nil }),
	},
	Elements: emitLinetypeElements,
})

// emitLinetypeElements 逐元素交错输出：每个元素先写 49 虚线长度，
// R13 起跟复杂元素类型 74；类型 2-5（形/文字元素）才输出形号、样式句柄、
// 比例、旋转、偏移，文字内容 9 只有文字元素（类型位 2）才有，
// 类型 0/1 只有长度。
func emitLinetypeElements(lt *Linetype, w *core.Writer, v schema.Version) {
	var (
		dash  = lt.DashLengths.Head()
		typ   = lt.ElementTypes.Head()
		shape = lt.ShapeNumbers.Head()
		style = lt.StyleHandles.Head()
		scale = lt.Scales.Head()
		rot   = lt.Rotations.Head()
		offX  = lt.OffsetsX.Head()
		offY  = lt.OffsetsY.Head()
		text  = lt.Texts.Head()
	)

	for ; dash != nil; dash = dash.Next() {
		w.Float(49, dash.Value)

		if v >= schema.SubclassMarkers && typ != nil {
			w.Int16(74, typ.Value)

			if typ.Value >= 2 && typ.Value <= 5 {
				if shape != nil {
					w.Int16(75, shape.Value)
				}
				if style != nil {
					w.Tag(340, style.Value)
				}
				if scale != nil {
					w.Float(46, scale.Value)
				}
				if rot != nil {
					w.Float(50, rot.Value)
				}
				if offX != nil {
					w.Float(44, offX.Value)
				}
				if offY != nil {
					w.Float(45, offY.Value)
				}
				// 复杂元素消耗掉对应位置的一项。文字链表例外：
				// 形元素（类型位 4）线上没有组码 9，解码不会给它入链，
				// 所以只有文字元素（类型位 2）才消耗一项，两侧保持对称
				if typ.Value&2 != 0 {
					if text != nil {
						w.Tag(9, text.Value)
					}
					text = next(text)
				}
				shape = next(shape)
				style = next(style)
				scale = next(scale)
				rot = next(rot)
				offX = next(offX)
				offY = next(offY)
			}
		}
		typ = next(typ)
	}
}

func next[T any](n *core.ScalarNode[T]) *core.ScalarNode[T] {
	if n == nil {
		return nil
	}
	return n.Next()
}

func init() {
	Register("LTYPE", func(s *core.Scanner, ver schema.Version) (Record, error) {
		lt, err := codec.Decode(LinetypeSchema, s, ver)
		if err != nil {
			return nil, err
		}
		return lt, nil
	})
}
