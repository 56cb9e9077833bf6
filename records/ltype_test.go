package records_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/records"
	"github.com/zooyer/dxf/schema"
)

func TestMain(m *testing.M) {
	codec.SetLogger(zerolog.Nop())
	m.Run()
}

// DASHED：两段的简单线型
func TestLinetype_DecodeSimple(t *testing.T) {
	s := core.NewScanner(strings.NewReader(
		"  5\n14\n  2\nDASHED\n 70\n64\n  3\nDashed line\n 72\n65\n 73\n2\n 40\n0.75\n 49\n0.5\n 49\n-0.25\n  0\nENDTAB\n"))

	lt, err := codec.Decode(records.LinetypeSchema, s, schema.R14)
	require.NoError(t, err)

	assert.Equal(t, "DASHED", lt.Name)
	assert.Equal(t, int16(64), lt.Flag)
	assert.Equal(t, int16(65), lt.Alignment)
	assert.Equal(t, int16(2), lt.ElementCount)
	assert.Equal(t, []float64{0.5, -0.25}, lt.DashLengths.Values())
}

// 缺线型名：整条记录丢弃
func TestLinetype_NameRequired(t *testing.T) {
	s := core.NewScanner(strings.NewReader(" 73\n0\n 40\n0.0\n  0\nENDTAB\n"))

	_, err := codec.Decode(records.LinetypeSchema, s, schema.R14)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMissingRequired)
}

// 复杂元素逐个交错输出：49 后跟 74，类型 2-5 才有形号/样式句柄/比例/
// 旋转/偏移/文字，类型 0 只有长度
func TestLinetype_EncodeComplexElements(t *testing.T) {
	lt := records.LinetypeSchema.Factory()
	require.NoError(t, lt.SetHandle(0x14))
	lt.Name = "GAS_LINE"
	lt.Description = "Gas line ----GAS----"
	lt.ElementCount = 3
	lt.TotalLength = 1.7

	lt.DashLengths.Append(0.5)
	lt.DashLengths.Append(-0.2)
	lt.DashLengths.Append(-0.25)
	lt.ElementTypes.Append(0)
	lt.ElementTypes.Append(2)
	lt.ElementTypes.Append(0)
	// 类型 2 的文字元素占用各复杂字段链表的第一项
	lt.ShapeNumbers.Append(0)
	lt.StyleHandles.Append("5A")
	lt.Scales.Append(0.1)
	lt.Rotations.Append(0)
	lt.OffsetsX.Append(-0.1)
	lt.OffsetsY.Append(-0.05)
	lt.Texts.Append("GAS")

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(records.LinetypeSchema, lt, schema.R14, &buf))
	out := buf.String()

	// 第二个元素（类型 2）的子组完整且连续
	assert.Contains(t, out,
		" 49\n-0.200000\n 74\n2\n 75\n0\n340\n5A\n 46\n0.100000\n 50\n0.000000\n 44\n-0.100000\n 45\n-0.050000\n  9\nGAS\n")
	// 类型 0 的元素只有长度和类型
	assert.Contains(t, out, " 49\n-0.250000\n 74\n0\n")
	assert.NotContains(t, out, " 49\n0.500000\n 75")
}

// R13 以下没有复杂元素，只写 49
func TestLinetype_ElementsPreR13(t *testing.T) {
	lt := records.LinetypeSchema.Factory()
	lt.Name = "DASHED"
	lt.ElementCount = 1
	lt.DashLengths.Append(0.5)
	lt.ElementTypes.Append(0)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(records.LinetypeSchema, lt, schema.R12, &buf))

	assert.Contains(t, buf.String(), " 49\n0.500000\n")
	assert.NotContains(t, buf.String(), " 74")
}

// 回环：各链表的位置对应关系原样保持
func TestLinetype_RoundTripComplex(t *testing.T) {
	lt := records.LinetypeSchema.Factory()
	require.NoError(t, lt.SetHandle(0x14))
	lt.Name = "HOT_WATER"
	lt.ElementCount = 2
	lt.DashLengths.Append(0.5)
	lt.DashLengths.Append(-0.3)
	lt.ElementTypes.Append(0)
	lt.ElementTypes.Append(3)
	lt.ShapeNumbers.Append(0)
	lt.StyleHandles.Append("11")
	lt.Scales.Append(0.1)
	lt.Rotations.Append(0)
	lt.OffsetsX.Append(-0.1)
	lt.OffsetsY.Append(-0.05)
	lt.Texts.Append("HW")

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(records.LinetypeSchema, lt, schema.R14, &buf))
	buf.WriteString("  0\nENDTAB\n")

	s := core.NewScanner(&buf)
	require.True(t, s.Next())
	require.Equal(t, core.Tag{Code: 0, Value: "LTYPE"}, s.LastTag)

	got, err := codec.Decode(records.LinetypeSchema, s, schema.R14)
	require.NoError(t, err)

	assert.Equal(t, lt.DashLengths.Values(), got.DashLengths.Values())
	assert.Equal(t, lt.ElementTypes.Values(), got.ElementTypes.Values())
	assert.Equal(t, lt.StyleHandles.Values(), got.StyleHandles.Values())
	assert.Equal(t, lt.Texts.Values(), got.Texts.Values())
	assert.Equal(t, lt.OffsetsX.Values(), got.OffsetsX.Values())
	assert.Equal(t, lt.OffsetsY.Values(), got.OffsetsY.Values())
}

// 形元素（类型 4）线上没有组码 9，文字链表只被文字元素（类型位 2）
// 消耗，形/文字混排时 9 不会错位
func TestLinetype_MixedShapeTextElements(t *testing.T) {
	lt := records.LinetypeSchema.Factory()
	lt.Name = "FENCE"
	lt.ElementCount = 3
	lt.DashLengths.Append(0.5)
	lt.DashLengths.Append(-0.3)
	lt.DashLengths.Append(-0.3)
	lt.ElementTypes.Append(4)
	lt.ElementTypes.Append(2)
	lt.ElementTypes.Append(0)
	lt.ShapeNumbers.Append(42)
	lt.ShapeNumbers.Append(0)
	lt.StyleHandles.Append("5A")
	lt.StyleHandles.Append("5B")
	lt.Scales.Append(1)
	lt.Scales.Append(0.1)
	lt.Rotations.Append(0)
	lt.Rotations.Append(0)
	lt.OffsetsX.Append(0)
	lt.OffsetsX.Append(-0.1)
	lt.OffsetsY.Append(0)
	lt.OffsetsY.Append(-0.05)
	lt.Texts.Append("GAS") // 只属于第二个元素（文字）

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(records.LinetypeSchema, lt, schema.R14, &buf))
	out := buf.String()

	// 形元素的子组以 45 结束，没有 9
	assert.Contains(t, out, " 74\n4\n 75\n42\n340\n5A\n 46\n1.000000\n 50\n0.000000\n 44\n0.000000\n 45\n0.000000\n 49\n")
	assert.Contains(t, out, " 45\n-0.050000\n  9\nGAS\n")

	buf.WriteString("  0\nENDTAB\n")
	s := core.NewScanner(&buf)
	require.True(t, s.Next())

	got, err := codec.Decode(records.LinetypeSchema, s, schema.R14)
	require.NoError(t, err)

	assert.Equal(t, []string{"GAS"}, got.Texts.Values())
	assert.Equal(t, []int16{42, 0}, got.ShapeNumbers.Values())
	assert.Equal(t, []string{"5A", "5B"}, got.StyleHandles.Values())
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"DICTIONARY", "OBJECT_PTR", "LTYPE", "TEXT", "REGION"} {
		_, ok := records.Lookup(name)
		assert.True(t, ok, "未注册: %s", name)
	}

	_, ok := records.Lookup("MESH")
	assert.False(t, ok)
}
