package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/schema"
)

func TestMain(m *testing.M) {
	codec.SetLogger(zerolog.Nop())
	m.Run()
}

// 一张最小但四个节齐全的图纸
const sampleDXF = `  0
SECTION
  2
HEADER
  9
$ACADVER
  1
AC1014
  0
ENDSEC
  0
SECTION
  2
TABLES
  0
TABLE
  2
LTYPE
 70
1
  0
LTYPE
  5
14
  2
DASHED
 70
64
  3
Dashed line
 72
65
 73
2
 40
0.75
 49
0.5
 49
-0.25
  0
ENDTAB
  0
ENDSEC
  0
SECTION
  2
ENTITIES
  0
TEXT
  5
2F
  8
TK
 10
10.5
 20
-3.25
 40
2.5
  1
hello
  0
ENDSEC
  0
SECTION
  2
OBJECTS
  0
DICTIONARY
  5
1A
330
0
  3
ACAD_GROUP
350
2B
  0
OBJECT_PTR
  5
99
1001
ACAD
1000
OBJECTDBX CLASSES
  0
ENDSEC
  0
EOF
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	assert.Equal(t, schema.R14, doc.Version)
	assert.Equal(t, 1, doc.Linetypes.Len())
	assert.Equal(t, 1, doc.Texts.Len())
	assert.Equal(t, 1, doc.Dictionaries.Len())
	assert.Equal(t, 1, doc.ObjectPtrs.Len())

	lt := doc.Linetypes.Head().Record
	assert.Equal(t, "DASHED", lt.Name)
	assert.Equal(t, []float64{0.5, -0.25}, lt.DashLengths.Values())

	text := doc.Texts.Head().Record
	assert.Equal(t, "hello", text.Value)
	assert.Equal(t, "TK", text.LayerName)
	assert.Equal(t, 0x2F, text.Handle())

	dict := doc.Dictionaries.Head().Record
	assert.Equal(t, 0x1A, dict.Handle())
	assert.Equal(t, "0", dict.SoftOwner())
	assert.Equal(t, "ACAD_GROUP", dict.EntryName)
	assert.Equal(t, "2B", dict.EntryHandle)

	assert.Equal(t, []core.Tag{
		{Code: 1001, Value: "ACAD"},
		{Code: 1000, Value: "OBJECTDBX CLASSES"},
	}, doc.ObjectPtrs.Head().Record.Xdata.Values())
}

// 整张图纸 Save 再 Load，结构不变
func TestSaveLoadRoundTrip(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))
	assert.True(t, strings.HasSuffix(buf.String(), "  0\nEOF\n"))

	again, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)

	assert.Equal(t, doc.Version, again.Version)
	assert.Equal(t, doc.Linetypes.Len(), again.Linetypes.Len())
	assert.Equal(t, doc.Texts.Len(), again.Texts.Len())
	assert.Equal(t, doc.Dictionaries.Len(), again.Dictionaries.Len())
	assert.Equal(t, doc.ObjectPtrs.Len(), again.ObjectPtrs.Len())

	assert.Equal(t, doc.Texts.Head().Record.Value, again.Texts.Head().Record.Value)
	assert.Equal(t, doc.Dictionaries.Head().Record.EntryName, again.Dictionaries.Head().Record.EntryName)
	assert.Equal(t,
		doc.Linetypes.Head().Record.DashLengths.Values(),
		again.Linetypes.Head().Record.DashLengths.Values())
}

// 不认识的实体名跳到下一个 0 组码，其余记录照常解
func TestLoad_SkipsUnknownRecords(t *testing.T) {
	data := `  0
SECTION
  2
ENTITIES
  0
MESH
 91
3
  0
TEXT
  1
kept
  0
ENDSEC
  0
EOF
`
	doc, err := Load(strings.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Texts.Len())
	assert.Equal(t, "kept", doc.Texts.Head().Record.Value)
}

// 缺必填字段的记录只丢那一条，不影响整个文件
func TestLoad_DiscardsIncompleteRecord(t *testing.T) {
	data := `  0
SECTION
  2
OBJECTS
  0
DICTIONARY
  5
1A
  0
DICTIONARY
  3
KEPT
  0
ENDSEC
  0
EOF
`
	doc, err := Load(strings.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, 1, doc.Dictionaries.Len())
	assert.Equal(t, "KEPT", doc.Dictionaries.Head().Record.EntryName)
}

// 记录级的数值错误中止整个加载（与关文件返回空的老行为一致）
func TestLoad_AbortsOnTypeMismatch(t *testing.T) {
	data := `  0
SECTION
  2
ENTITIES
  0
TEXT
 40
not-a-number
  1
x
  0
ENDSEC
  0
EOF
`
	doc, err := Load(strings.NewReader(data))
	assert.Error(t, err)
	assert.Nil(t, doc)
}

// HEADER 缺 $ACADVER 时按 R14 处理
func TestLoad_DefaultVersion(t *testing.T) {
	doc, err := Load(strings.NewReader("  0\nSECTION\n  2\nENTITIES\n  0\nENDSEC\n  0\nEOF\n"))
	require.NoError(t, err)
	assert.Equal(t, schema.R14, doc.Version)
}

func TestDocument_Free(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	doc.Free()
	assert.True(t, doc.Texts.Empty())
	assert.True(t, doc.Dictionaries.Empty())
	assert.True(t, doc.Linetypes.Empty())
}
