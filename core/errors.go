package core

import (
	"fmt"
)

type dxfError string

func (e dxfError) Error() string {
	return string(e)
}

const (
	// ErrMalformedTag 组码行不是整数，或者值行缺失
	ErrMalformedTag = dxfError("dxf: malformed tag")

	// ErrTypeMismatch 值无法按组码对应的类型解析，该记录作废
	ErrTypeMismatch = dxfError("dxf: value does not match group code type")

	// ErrUnexpectedEOF 记录尚未遇到 0 组码终止符，流已经结束
	ErrUnexpectedEOF = dxfError("dxf: unexpected end of stream before record terminator")

	// ErrMissingRequired 模式声明的必填字段为空，整条记录丢弃
	ErrMissingRequired = dxfError("dxf: required field is empty")

	// ErrNegativeHandle 句柄必须非负，setter 直接拒绝
	ErrNegativeHandle = dxfError("dxf: handle must not be negative")

	// ErrChainedNode 节点的 next 非空时不允许单独释放，必须先脱链
	ErrChainedNode = dxfError("dxf: cannot free a node that still owns a successor")
)

// TagError 携带出错标签上下文的错误，Unwrap 后可用 errors.Is 判定种类
type TagError struct {
	Source string
	Line   int
	Code   int
	Value  string
	Want   Class
	Err    error
}

func (e *TagError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%v (code %d value %q as %s at %s:%d)",
			e.Err, e.Code, e.Value, e.Want, e.Source, e.Line)
	}
	return fmt.Sprintf("%v (code %d value %q as %s)", e.Err, e.Code, e.Value, e.Want)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// StreamError 底层读写失败，携带文件名与行号用于诊断
type StreamError struct {
	Source string
	Line   int
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("dxf: stream error at %s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// FieldError 记录级校验失败，Field 为模式中声明的字段名
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v (%s.%s)", e.Err, e.Type, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
