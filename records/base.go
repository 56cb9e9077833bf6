// Package records 定义各记录类型的结构体与字段表（DICTIONARY、LTYPE、
// TEXT、REGION、OBJECT_PTR），并提供按实体名查找解码器的注册表。
// 字段表是数据，分发循环在 codec 包里，这里不再手写 switch。
package records

import (
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Base 所有记录共有的头部：句柄（组码 5）与软/硬属主字典句柄（330/360）。
// 句柄在图内唯一，0 表示尚未分配；属主句柄空串表示没有属主。
type Base struct {
	handle    int
	softOwner string
	hardOwner string
}

func (b *Base) Handle() int {
	return b.handle
}

// SetHandle 句柄必须非负，负值直接拒绝，不做静默截断
func (b *Base) SetHandle(handle int) error {
	if handle < 0 {
		return core.ErrNegativeHandle
	}
	b.handle = handle
	return nil
}

// ClearHandle 把句柄置为未分配哨兵，编码时将不输出组码 5
func (b *Base) ClearHandle() {
	b.handle = schema.UnsetHandle
}

func (b *Base) SoftOwner() string {
	return b.softOwner
}

func (b *Base) SetSoftOwner(handle string) {
	b.softOwner = handle
}

func (b *Base) HardOwner() string {
	return b.hardOwner
}

func (b *Base) SetHardOwner(handle string) {
	b.hardOwner = handle
}

// Entity 图形实体（TEXT、REGION 等）共有的属性块，对应子类标记 AcDbEntity
type Entity struct {
	Base
	LayerName        string                  // 组码 8，缺省图层 "0"
	Linetype         string                  // 组码 6，缺省 BYLAYER
	Elevation        float64                 // 组码 38，标高
	Thickness        float64                 // 组码 39，厚度
	LinetypeScale    float64                 // 组码 48，缺省 1.0
	Visibility       int16                   // 组码 60，0 可见
	Color            int16                   // 组码 62，256 表示随层
	Paperspace       int16                   // 组码 67，1 表示图纸空间
	GraphicsDataSize int64                   // 组码 92（32 位）/160（64 位）
	GraphicsData     core.ScalarList[string] // 组码 310，按行链式存放
	Lineweight       int16                   // 组码 370，2002 起
	PlotStyle        string                  // 组码 390
	Material         string                  // 组码 347，2008 起
	TrueColor        int32                   // 组码 420
	ColorName        string                  // 组码 430
	Transparency     int32                   // 组码 440
	ShadowMode       int16                   // 组码 284
}

func (e *Entity) common() *Entity {
	return e
}

// entityRecord 带 AcDbEntity 公共属性块的记录
type entityRecord interface {
	schema.Object
	common() *Entity
}

// newEntity 公共属性块的模式默认值
func newEntity() Entity {
	return Entity{
		LayerName:     schema.DefaultLayer,
		Linetype:      schema.DefaultLinetype,
		LinetypeScale: 1.0,
		Color:         256,
	}
}

// marker 组码 100 子类标记的纯输出规则，低于 R13 不写
func marker[R schema.Object](name string) func(R, *core.Writer, schema.Version) {
	return func(_ R, w *core.Writer, v schema.Version) {
		if v >= schema.SubclassMarkers {
			w.Tag(100, name)
		}
	}
}

// entityRules AcDbEntity 公共属性块的组码规则，TEXT/REGION 共用。
// 顺序即输出顺序：子类标记、空间标志、图层、线型、材质、标高、厚度、
// 颜色、线宽、线型比例、可见性、图形数据、真彩色、打印样式、阴影模式。
func entityRules[R entityRecord]() []schema.Rule[R] {
	return []schema.Rule[R]{
		{Code: 100, Emit: marker[R]("AcDbEntity")},
		{Code: 67, Name: "paperspace",
			Set: func(r R, t core.Tag) error {
				v, err := t.Int16()
				r.common().Paperspace = v
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if r.common().Paperspace != 0 {
					w.Int16(67, r.common().Paperspace)
				}
			}},
		{Code: 8, Name: "layer",
			Set: func(r R, t core.Tag) error {
				// 空图层名静默落回缺省图层
				if name := t.AsString(); name != "" {
					r.common().LayerName = name
				}
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				w.Tag(8, r.common().LayerName)
			}},
		{Code: 6, Name: "linetype",
			Set: func(r R, t core.Tag) error {
				if name := t.AsString(); name != "" {
					r.common().Linetype = name
				}
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if lt := r.common().Linetype; lt != schema.DefaultLinetype {
					w.Tag(6, lt)
				}
			}},
		{Code: 347, Name: "material", Min: schema.Material,
			Set: func(r R, t core.Tag) error {
				r.common().Material = t.AsString()
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if m := r.common().Material; m != "" && v >= schema.Material {
					w.Tag(347, m)
				}
			}},
		{Code: 38, Name: "elevation",
			Set: func(r R, t core.Tag) error {
				e, err := t.Float()
				r.common().Elevation = e
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if e := r.common().Elevation; e != 0 {
					w.Float(38, e)
				}
			}},
		{Code: 39, Name: "thickness",
			Set: func(r R, t core.Tag) error {
				th, err := t.Float()
				r.common().Thickness = th
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if th := r.common().Thickness; th != 0 {
					w.Float(39, th)
				}
			}},
		{Code: 62, Name: "color",
			Set: func(r R, t core.Tag) error {
				c, err := t.Int16()
				r.common().Color = c
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if c := r.common().Color; c != 256 { // 256 随层，省略
					w.Int16(62, c)
				}
			}},
		{Code: 370, Name: "lineweight", Min: schema.Lineweight,
			Set: func(r R, t core.Tag) error {
				lw, err := t.Int16()
				r.common().Lineweight = lw
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if lw := r.common().Lineweight; lw != 0 && v >= schema.Lineweight {
					w.Int16(370, lw)
				}
			}},
		{Code: 48, Name: "linetype_scale",
			Set: func(r R, t core.Tag) error {
				s, err := t.Float()
				r.common().LinetypeScale = s
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if s := r.common().LinetypeScale; s != 1.0 {
					w.Float(48, s)
				}
			}},
		{Code: 60, Name: "visibility",
			Set: func(r R, t core.Tag) error {
				vis, err := t.Int16()
				r.common().Visibility = vis
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if vis := r.common().Visibility; vis != 0 {
					w.Int16(60, vis)
				}
			}},
		{Code: 92, Name: "graphics_data_size", Min: schema.V2000,
			Set: func(r R, t core.Tag) error {
				n, err := t.Int32()
				r.common().GraphicsDataSize = int64(n)
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if n := r.common().GraphicsDataSize; n > 0 && v >= schema.V2000 {
					w.Int32(92, int32(n))
				}
			}},
		// 160 是 64 位构建下图形数据长度的写法，读进同一个字段，写统一用 92
		{Code: 160, Name: "graphics_data_size", Min: schema.V2000,
			Set: func(r R, t core.Tag) error {
				n, err := t.Int64()
				r.common().GraphicsDataSize = n
				return err
			}},
		{Code: 310, Name: "graphics_data", Min: schema.V2000, Repeat: true,
			Set: func(r R, t core.Tag) error {
				r.common().GraphicsData.Append(t.AsString())
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if v < schema.V2000 {
					return
				}
				for line := range r.common().GraphicsData.All() {
					w.Tag(310, line)
				}
			}},
		{Code: 420, Name: "true_color",
			Set: func(r R, t core.Tag) error {
				c, err := t.Int32()
				r.common().TrueColor = c
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if c := r.common().TrueColor; c != 0 {
					w.Int32(420, c)
				}
			}},
		{Code: 430, Name: "color_name",
			Set: func(r R, t core.Tag) error {
				r.common().ColorName = t.AsString()
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if name := r.common().ColorName; name != "" {
					w.Tag(430, name)
				}
			}},
		{Code: 440, Name: "transparency",
			Set: func(r R, t core.Tag) error {
				a, err := t.Int32()
				r.common().Transparency = a
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if a := r.common().Transparency; a != 0 {
					w.Int32(440, a)
				}
			}},
		{Code: 390, Name: "plot_style",
			Set: func(r R, t core.Tag) error {
				r.common().PlotStyle = t.AsString()
				return nil
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if ps := r.common().PlotStyle; ps != "" {
					w.Tag(390, ps)
				}
			}},
		{Code: 284, Name: "shadow_mode", Min: schema.V2009,
			Set: func(r R, t core.Tag) error {
				m, err := t.Int16()
				r.common().ShadowMode = m
				return err
			},
			Emit: func(r R, w *core.Writer, v schema.Version) {
				if m := r.common().ShadowMode; m != 0 && v >= schema.V2009 {
					w.Int16(284, m)
				}
			}},
	}
}
