package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/schema"
	"github.com/zooyer/dxf/utils"
	"github.com/zooyer/golib/xos"
)

// Config 可选的 dxf.toml 配置，放在工作目录或程序旁边
type Config struct {
	Version string `toml:"version"` // 输出格式版本(R14/2008/AC1015)，空为与输入相同
	Layer   string `toml:"layer"`   // 只导出该图层的文字，空为全部
	Quiet   bool   `toml:"quiet"`   // 关闭解码诊断输出
}

func loadConfig() (config Config) {
	var paths = []string{
		"dxf.toml",
		filepath.Join(filepath.Dir(os.Args[0]), "dxf.toml"),
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, &config); err == nil {
			return
		}
	}

	return
}

// pickFile 优先用拖进来的文件，没有就弹文件选择框
func pickFile() (string, error) {
	if len(os.Args) >= 2 {
		return os.Args[1], nil
	}

	return zenity.SelectFile(
		zenity.Title("选择DXF图纸"),
		zenity.FileFilters{{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true}},
	)
}

func main() {
	defer xos.PauseExit()

	var config = loadConfig()
	if config.Quiet {
		codec.SetLogger(zerolog.Nop())
	}

	filename, err := pickFile()
	if err != nil || filename == "" {
		fmt.Println("请把DXF文件拖入该程序上执行！")
		return
	}

	doc, err := dxf.Open(filename)
	if err != nil {
		panic(err)
	}
	defer doc.Free()

	// 1. 打印摘要
	fmt.Println("开始处理:", filename)
	fmt.Println("格式版本:", doc.Version)
	fmt.Printf("线型:%d 文字:%d 面域:%d 字典:%d 对象指针:%d\n",
		doc.Linetypes.Len(), doc.Texts.Len(), doc.Regions.Len(),
		doc.Dictionaries.Len(), doc.ObjectPtrs.Len(),
	)

	for name, handle := range utils.GetEntries(&doc.Dictionaries) {
		fmt.Printf("    [字典] %s -> %s\n", name, handle)
	}

	// 2. 导出文字表格
	var texts = doc.Texts.Records()
	if config.Layer != "" {
		texts = utils.TextsOnLayer(&doc.Texts, config.Layer)
	}
	utils.SortTexts(texts)

	if len(texts) > 0 {
		const header = "图层,内容,X,Y,字高\n"
		var csv = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"

		if err = os.WriteFile(csv, []byte(header), 0644); err != nil {
			panic(err)
		}
		for _, t := range texts {
			var line = fmt.Sprintf("%s,%s,%.2f,%.2f,%.2f\n",
				t.LayerName, t.Value, t.Insertion.X, t.Insertion.Y, t.Height,
			)
			if err = xos.AppendFile(csv, []byte(line), 0644); err != nil {
				panic(err)
			}
		}
		fmt.Println("写入文件:", csv)
	}

	// 3. 规范化重写（按配置切换输出版本）
	if config.Version != "" {
		v, err := schema.ParseVersion(config.Version)
		if err != nil {
			panic(err)
		}
		doc.Version = v
	}

	var out = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".out.dxf"
	if err = doc.WriteFile(out); err != nil {
		panic(err)
	}
	fmt.Println("写入文件:", out)
}
