package core

import (
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// Class 代表组码对应的值类型
type Class int

const (
	String Class = iota
	Double
	Bool
	Int16
	Int32
	Int64
)

func (c Class) String() string {
	switch c {
	case String:
		return "string"
	case Double:
		return "double"
	case Bool:
		return "bool"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	}
	return "unknown"
}

// classRange 组码区间表，区间互不重叠
type classRange struct {
	lo, hi int
	class  Class
}

var classRanges = []classRange{
	{0, 9, String},
	{10, 59, Double},
	{60, 79, Int16},
	{90, 99, Int32},
	{100, 100, String},
	{102, 102, String},
	{105, 105, String},
	{110, 149, Double},
	{160, 169, Int64},
	{170, 179, Int16},
	{210, 239, Double},
	{270, 289, Int16},
	{290, 299, Bool},
	{300, 369, String},
	{370, 389, Int16},
	{390, 399, String},
	{400, 409, Int16},
	{410, 419, String},
	{420, 429, Int32},
	{430, 439, String},
	{440, 459, Int32},
	{460, 469, Double},
	{470, 481, String},
	{999, 1009, String},
	{1010, 1059, Double},
	{1060, 1070, Int16},
	{1071, 1071, Int32},
}

// Classify 根据组码区间判定值类型，纯函数，无副作用。
// 不在任何区间内的组码按字符串处理（向前兼容，原样透传）。
func Classify(code int) Class {
	for _, r := range classRanges {
		if code >= r.lo && code <= r.hi {
			return r.class
		}
	}
	return String
}

// AsFloat 将值转换为 float64（宽松版本，解析失败返回 0）
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int（宽松版本，解析失败返回 0）
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Float 严格版本，值无法按 double 解析时返回 ErrTypeMismatch
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, t.mismatch(Double)
	}
	return f, nil
}

// Int16 严格版本
func (t Tag) Int16() (int16, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 16)
	if err != nil {
		return 0, t.mismatch(Int16)
	}
	return int16(i), nil
}

// Int32 严格版本
func (t Tag) Int32() (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 32)
	if err != nil {
		return 0, t.mismatch(Int32)
	}
	return int32(i), nil
}

// Int64 严格版本
func (t Tag) Int64() (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
	if err != nil {
		return 0, t.mismatch(Int64)
	}
	return i, nil
}

// Bool 严格版本，290-299 组码的值只有 0 和 1
func (t Tag) Bool() (bool, error) {
	switch strings.TrimSpace(t.Value) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, t.mismatch(Bool)
}

// Handle 按十六进制解析句柄值（组码 5/330/340/350/360）
func (t Tag) Handle() (int, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(t.Value), 16, 64)
	if err != nil {
		return 0, t.mismatch(String)
	}
	return int(i), nil
}

func (t Tag) mismatch(want Class) error {
	return &TagError{Code: t.Code, Value: t.Value, Want: want, Err: ErrTypeMismatch}
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}
