package schema

import (
	"fmt"
	"strings"
)

// Version DXF 格式版本序数，大小可以直接比较
type Version int

const (
	R10 Version = iota + 1
	R11
	R12
	R13
	R14
	V2000
	V2002
	V2004
	V2007
	V2008
	V2009
)

// 各类可选标签的版本门槛
const (
	// SubclassMarkers 组码 100 子类标记从 R13 起出现
	SubclassMarkers = R13
	// Reactors 102 {ACAD_REACTORS}/{ACAD_XDICTIONARY} 组从 R14 起出现
	Reactors = R14
	// Lineweight 组码 370 从 2002 起出现
	Lineweight = V2002
	// Material 组码 347 材质指针从 2008 起出现
	Material = V2008
)

var versionNames = map[Version]string{
	R10:   "R10",
	R11:   "R11",
	R12:   "R12",
	R13:   "R13",
	R14:   "R14",
	V2000: "2000",
	V2002: "2002",
	V2004: "2004",
	V2007: "2007",
	V2008: "2008",
	V2009: "2009",
}

// acadVersions HEADER 段 $ACADVER 变量值到版本的映射
var acadVersions = map[string]Version{
	"AC1006": R10,
	"AC1009": R12,
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": V2000,
	"AC1018": V2004,
	"AC1021": V2007,
	"AC1024": V2009,
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Version(%d)", int(v))
}

// Acad 返回 $ACADVER 使用的版本串（取该版本对应的最低数据库版本号）
func (v Version) Acad() string {
	switch {
	case v <= R10:
		return "AC1006"
	case v <= R12:
		return "AC1009"
	case v <= R13:
		return "AC1012"
	case v <= R14:
		return "AC1014"
	case v <= V2002:
		return "AC1015"
	case v <= V2004:
		return "AC1018"
	case v <= V2008:
		return "AC1021"
	default:
		return "AC1024"
	}
}

// ParseVersion 接受 "R14"、"2008"、"AC1014" 三种写法
func ParseVersion(s string) (Version, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if v, ok := acadVersions[s]; ok {
		return v, nil
	}
	for v, name := range versionNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("dxf: unknown format version %q", s)
}
