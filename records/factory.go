package records

import (
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Record 是一切可按实体名解码的记录的接口
type Record interface {
	schema.Object
	Type() string
}

// Decoder 定义了如何从标签流中解出一条记录
type Decoder func(s *core.Scanner, ver schema.Version) (Record, error)

var registry = map[string]Decoder{}

// Register 允许以后动态扩展新的记录类型
func Register(typeName string, decoder Decoder) {
	registry[typeName] = decoder
}

// Lookup 根据实体名称查找解码器
func Lookup(typeName string) (Decoder, bool) {
	decoder, ok := registry[typeName]
	return decoder, ok
}
