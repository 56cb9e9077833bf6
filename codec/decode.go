package codec

import (
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

// Decode 按字段表从标签流中还原一条记录。
//
// 调用约定沿用章节驱动的习惯：记录自己的 0/<类型名> 标签已被上层消费，
// 返回时终止用的 0 标签（下一实体名或 ENDSEC）仍留在 s.LastTag 里。
//
// 致命错误只有三种：底层流错误、数值解析失败（ErrTypeMismatch）、
// 没等到 0 终止符流就结束了（ErrUnexpectedEOF）。其余情况——未知组码、
// 版本门槛不满足、子类名对不上——只记诊断，解码继续。
func Decode[R schema.Object](sc *schema.Schema[R], s *core.Scanner, ver schema.Version) (R, error) {
	var zero R

	record := sc.Factory()

	for {
		if !s.Next() {
			if err := s.Err(); err != nil {
				return zero, err
			}
			return zero, &core.StreamError{Source: s.Source(), Line: s.Line(), Err: core.ErrUnexpectedEOF}
		}

		tag := s.LastTag

		switch tag.Code {
		case 0:
			// 记录结束。必填字段还空着的，整条记录丢弃
			if sc.Required != nil {
				if err := sc.Required(record); err != nil {
					return zero, err
				}
			}
			return record, nil

		case 5:
			handle, err := tag.Handle()
			if err != nil {
				return zero, locate(s, err)
			}
			if err = record.SetHandle(handle); err != nil {
				return zero, locate(s, err)
			}

		case 100:
			if name := tag.AsString(); !sc.ExpectsSubclass(name) {
				logger.Warn().
					Str("type", sc.TypeName).Str("subclass", name).
					Int("line", s.Line()).Msg("子类标记与模式不符")
			}

		case 102:
			// {ACAD_REACTORS}/{ACAD_XDICTIONARY} 的结构括号，本身不携带数据

		case 330:
			record.SetSoftOwner(tag.AsString())

		case 360:
			record.SetHardOwner(tag.AsString())

		case 999:
			// 注释只上报，不落在记录上
			logger.Info().Str("comment", tag.AsString()).Int("line", s.Line()).Msg("DXF 注释")

		default:
			rule, ok := sc.Rule(tag.Code)
			if !ok {
				logger.Warn().
					Str("type", sc.TypeName).Int("code", tag.Code).
					Str("value", tag.AsString()).Int("line", s.Line()).
					Msg("未知组码，已跳过")
				continue
			}
			if rule.Min != 0 && ver < rule.Min {
				// 旧版本图纸里出现了新标签：宽容处理，值照常生效
				logger.Warn().
					Str("type", sc.TypeName).Str("field", rule.Name).
					Stringer("need", rule.Min).Stringer("have", ver).
					Int("line", s.Line()).Msg("组码超出当前格式版本")
			}
			if err := rule.Set(record, tag); err != nil {
				return zero, locate(s, err)
			}
		}
	}
}

// locate 给 TagError 补上来源文件与行号
func locate(s *core.Scanner, err error) error {
	if te, ok := err.(*core.TagError); ok {
		te.Source = s.Source()
		te.Line = s.Line()
	}
	return err
}
