// Package schema 描述每种 DXF 记录的字段表。
// 字段表是纯数据：一次性构建、只读共享，由 codec 包的通用引擎驱动，
// 各记录类型不再各写一份组码分发循环。
package schema

import (
	"github.com/zooyer/dxf/core"
)

// 字符串字段的命名默认值。作为常量随模式传递，不做进程级可变全局。
const (
	// DefaultLayer 缺省图层
	DefaultLayer = "0"
	// DefaultLinetype 缺省线型
	DefaultLinetype = "BYLAYER"
	// DefaultTextStyle 缺省文字样式
	DefaultTextStyle = "STANDARD"
	// LinetypeAlignment LTYPE 组码 72 的固定对齐码，恒为 65（字母 A）
	LinetypeAlignment = 65
)

// UnsetHandle 句柄哨兵值：编码时句柄等于它则不输出组码 5
const UnsetHandle = -1

// Object 所有记录共有的头部字段：句柄与软/硬属主字典句柄。
// records.Base 内嵌实现，codec 引擎通过它处理组码 5/330/360。
type Object interface {
	Handle() int
	SetHandle(handle int) error
	SoftOwner() string
	SetSoftOwner(handle string)
	HardOwner() string
	SetHardOwner(handle string)
}

// Rule 一条组码规则：解码侧 Set 把标签值写进记录，编码侧 Emit 按
// 模式声明的顺序写出标签（省缺省值、版本门控都在 Emit 闭包里）。
// Emit 为 nil 表示该组码只参与解码（例如交错输出的可重复组，由
// Schema.Elements 统一编码；或组码 100 的纯标记规则反过来只有 Emit）。
type Rule[R Object] struct {
	Code   int
	Name   string  // 字段名，仅用于诊断输出
	Min    Version // 非零时：低于该版本读到此组码要记一次诊断（值仍然生效）
	Repeat bool    // 追加进 ScalarList 而不是覆盖标量槽位
	Set    func(r R, tag core.Tag) error
	Emit   func(r R, w *core.Writer, v Version)
}

// Subclass 组码 100 子类标记，Min 以下的版本不读不写
type Subclass struct {
	Name string
	Min  Version
}

// Schema 一种记录类型的完整描述。构建后只读，同类型所有记录共享一份。
type Schema[R Object] struct {
	// TypeName 组码 0 的实体名，如 "DICTIONARY"
	TypeName string
	// Subclasses 解码时校验组码 100 的载荷用
	Subclasses []Subclass
	// Rules 按 DXF 规定的输出顺序排列
	Rules []Rule[R]
	// Factory 分配记录并填入模式声明的默认值
	Factory func() R
	// Required 必填字段校验，解码后与编码前各跑一次
	Required func(r R) error
	// Elements 可选钩子：多个可重复组码按元素交错输出（LTYPE 复杂元素）
	Elements func(r R, w *core.Writer, v Version)

	byCode map[int]*Rule[R]
}

// Define 完成模式构建：建立组码索引，返回只读模式
func Define[R Object](s Schema[R]) *Schema[R] {
	s.byCode = make(map[int]*Rule[R], len(s.Rules))
	for i := range s.Rules {
		r := &s.Rules[i]
		if r.Set == nil {
			// 纯标记规则（只有 Emit）不参与解码分发
			continue
		}
		s.byCode[r.Code] = r
	}
	return &s
}

// Rule 按组码查找解码规则
func (s *Schema[R]) Rule(code int) (*Rule[R], bool) {
	r, ok := s.byCode[code]
	return r, ok
}

// ExpectsSubclass 判断载荷是否是本模式声明过的子类名
func (s *Schema[R]) ExpectsSubclass(name string) bool {
	for _, sub := range s.Subclasses {
		if sub.Name == name {
			return true
		}
	}
	return false
}
