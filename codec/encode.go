package codec

import (
	"bytes"
	"io"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Encode 按字段表把一条记录写回标签流，输出顺序是格式规定的：
// 实体名、句柄、102 括号组、然后按模式声明的规则顺序。
//
// 整条记录先在内存里编完、校验通过后才落到 w 上：必填字段为空时
// 返回 ErrMissingRequired 并且一个字节都不写，绝不留半条记录。
func Encode[R schema.Object](sc *schema.Schema[R], record R, ver schema.Version, w io.Writer) error {
	if sc.Required != nil {
		if err := sc.Required(record); err != nil {
			logger.Warn().Str("type", sc.TypeName).Err(err).Msg("记录缺必填字段，跳过输出")
			return err
		}
	}

	var buf bytes.Buffer
	tw := core.NewWriter(&buf)

	// 1. 实体名
	tw.Tag(0, sc.TypeName)

	// 2. 句柄，-1 表示未分配、不输出
	if handle := record.Handle(); handle != schema.UnsetHandle {
		tw.Handle(5, handle)
	}

	// 3. 软/硬属主字典，R14 起以 102 括号组形式输出
	if ver >= schema.Reactors {
		if soft := record.SoftOwner(); soft != "" {
			tw.Tag(102, "{ACAD_REACTORS")
			tw.Tag(330, soft)
			tw.Tag(102, "}")
		}
		if hard := record.HardOwner(); hard != "" {
			tw.Tag(102, "{ACAD_XDICTIONARY")
			tw.Tag(360, hard)
			tw.Tag(102, "}")
		}
	}

	// 4. 模式规则按声明顺序输出（子类标记、标量字段、可重复字段）。
	// 省缺省值、版本门控由各规则的 Emit 闭包自行判断。
	for i := range sc.Rules {
		if emit := sc.Rules[i].Emit; emit != nil {
			emit(record, tw, ver)
		}
	}

	// 5. 多组码交错的可重复元素（LTYPE 复杂元素）
	if sc.Elements != nil {
		sc.Elements(record, tw, ver)
	}

	if err := tw.Err(); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}
