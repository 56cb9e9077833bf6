package core

import (
	"fmt"
	"io"
	"strconv"
)

// Writer 逐个写出 (组码, 值) 标签对：组码行右对齐 3 位，值行原样输出。
// 第一个写失败会被锁存，后续调用全部短路，最后统一从 Err 取。
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Tag 写出一条字符串值标签
func (w *Writer) Tag(code int, value string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%3d\n%s\n", code, value)
}

// Float 浮点值按 %f 固定小数形式写出（与读取端的期望一致）
func (w *Writer) Float(code int, value float64) {
	w.Tag(code, strconv.FormatFloat(value, 'f', 6, 64))
}

// Int 整数值十进制写出
func (w *Writer) Int(code int, value int) {
	w.Tag(code, strconv.Itoa(value))
}

// Int16 同 Int，组码 60-79/170-179/270-289/370-389 等 16 位字段
func (w *Writer) Int16(code int, value int16) {
	w.Tag(code, strconv.FormatInt(int64(value), 10))
}

// Int32 同 Int
func (w *Writer) Int32(code int, value int32) {
	w.Tag(code, strconv.FormatInt(int64(value), 10))
}

// Handle 句柄按十六进制写出（组码 5/330/340/350/360）
func (w *Writer) Handle(code int, value int) {
	w.Tag(code, strconv.FormatInt(int64(value), 16))
}

// Bool 布尔值写为 0/1
func (w *Writer) Bool(code int, value bool) {
	if value {
		w.Tag(code, "1")
	} else {
		w.Tag(code, "0")
	}
}

func (w *Writer) Err() error {
	return w.err
}
