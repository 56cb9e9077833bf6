// Package dxf 按节驱动 DXF 图纸的读写：HEADER 取格式版本，TABLES、
// ENTITIES、OBJECTS 各节逐条交给 codec 按字段表解码，结果挂进按类型
// 划分的记录链表；写出时按同样的节顺序逐条编码。
package dxf

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxf/codec"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/records"
	"github.com/zooyer/dxf/schema"
)

// Document 一张图纸解码后的全部记录。每条链表独占成员记录及其子链表。
type Document struct {
	Version      schema.Version
	Dictionaries core.RecordList[*records.Dictionary]
	ObjectPtrs   core.RecordList[*records.ObjectPtr]
	Linetypes    core.RecordList[*records.Linetype]
	Texts        core.RecordList[*records.Text]
	Regions      core.RecordList[*records.Region]
}

// Free 释放全部记录链表，文档回到空状态
func (d *Document) Free() {
	d.Dictionaries.Free()
	d.ObjectPtrs.Free()
	d.Linetypes.Free()
	d.Texts.Free()
	d.Regions.Free()
}

func (d *Document) append(record records.Record) {
	switch r := record.(type) {
	case *records.Dictionary:
		d.Dictionaries.Append(r)
	case *records.ObjectPtr:
		d.ObjectPtrs.Append(r)
	case *records.Linetype:
		d.Linetypes.Append(r)
	case *records.Text:
		d.Texts.Append(r)
	case *records.Region:
		d.Regions.Append(r)
	}
}

// parseHeader 只关心 $ACADVER，其余头变量跳过
func (d *Document) parseHeader(scanner *core.Scanner) error {
	var acadver bool
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			return nil
		}
		if tag.Code == 9 {
			acadver = strings.ToUpper(tag.AsString()) == "$ACADVER"
			continue
		}
		if acadver && tag.Code == 1 {
			if v, err := schema.ParseVersion(tag.AsString()); err == nil {
				d.Version = v
			}
			acadver = false
		}
	}
	return scanner.Err()
}

// parseRecords 逐条解出一节内的记录，直到 ENDSEC。
// 认识的实体名交给注册表里的解码器；不认识的跳到下一个 0 组码。
// 解码器返回时终止标签还在 LastTag 里，所以不再 Next。
func (d *Document) parseRecords(scanner *core.Scanner, stop string) error {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == stop {
			return nil
		}
		if tag.Code == 0 {
			if decoder, ok := records.Lookup(strings.ToUpper(tag.AsString())); ok {
				record, err := decoder(scanner, d.Version)
				if err != nil {
					// 缺必填字段只丢这一条记录，流本身还是好的
					if errors.Is(err, core.ErrMissingRequired) {
						continue
					}
					return err
				}
				d.append(record)
				continue
			}
		}
		if !scanner.Next() {
			return scanner.Err()
		}
	}
}

// parseTables TABLES 节：逐张表找 LTYPE，其余表跳过
func (d *Document) parseTables(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			return nil
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) != "TABLE" && strings.ToUpper(tag.Value) != "ENDTAB" {
			if decoder, ok := records.Lookup(strings.ToUpper(tag.AsString())); ok {
				record, err := decoder(scanner, d.Version)
				if err != nil {
					if errors.Is(err, core.ErrMissingRequired) {
						continue
					}
					return err
				}
				d.append(record)
				continue
			}
		}
		if !scanner.Next() {
			return scanner.Err()
		}
	}
}

// Open 打开并解码一个 DXF 文件
func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return load(core.NewFileScanner(file, filename))
}

// Load 从字符流解码一张图纸。记录级的致命错误（流错误、数值类型不符）
// 中止整个加载并返回错误，与关文件返回空的老行为一致。
func Load(reader io.Reader) (doc *Document, err error) {
	return load(core.NewScanner(reader))
}

func load(scanner *core.Scanner) (doc *Document, err error) {
	document := &Document{
		Version: schema.R14, // HEADER 缺 $ACADVER 时的缺省
	}

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.AsString())
			switch sectionName {
			case "HEADER":
				err = document.parseHeader(scanner)
			case "TABLES":
				err = document.parseTables(scanner)
			case "ENTITIES", "OBJECTS", "BLOCKS":
				err = document.parseRecords(scanner, "ENDSEC")
			}
			if err != nil {
				return nil, err
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return document, nil
}

// Save 按节写出整张图纸。单条记录缺必填字段时跳过该条继续写，
// 其余错误立即中止。
func (d *Document) Save(w io.Writer) error {
	tw := core.NewWriter(w)

	// HEADER
	tw.Tag(0, "SECTION")
	tw.Tag(2, "HEADER")
	tw.Tag(9, "$ACADVER")
	tw.Tag(1, d.Version.Acad())
	tw.Tag(0, "ENDSEC")

	// TABLES
	if !d.Linetypes.Empty() {
		tw.Tag(0, "SECTION")
		tw.Tag(2, "TABLES")
		tw.Tag(0, "TABLE")
		tw.Tag(2, "LTYPE")
		tw.Int(70, d.Linetypes.Len())
		if err := tw.Err(); err != nil {
			return err
		}
		for lt := range d.Linetypes.All() {
			if err := encodeOne(records.LinetypeSchema, lt, d.Version, w); err != nil {
				return err
			}
		}
		tw.Tag(0, "ENDTAB")
		tw.Tag(0, "ENDSEC")
	}

	// ENTITIES
	if !d.Texts.Empty() || !d.Regions.Empty() {
		tw.Tag(0, "SECTION")
		tw.Tag(2, "ENTITIES")
		if err := tw.Err(); err != nil {
			return err
		}
		for t := range d.Texts.All() {
			if err := encodeOne(records.TextSchema, t, d.Version, w); err != nil {
				return err
			}
		}
		for r := range d.Regions.All() {
			if err := encodeOne(records.RegionSchema, r, d.Version, w); err != nil {
				return err
			}
		}
		tw.Tag(0, "ENDSEC")
	}

	// OBJECTS
	if !d.Dictionaries.Empty() || !d.ObjectPtrs.Empty() {
		tw.Tag(0, "SECTION")
		tw.Tag(2, "OBJECTS")
		if err := tw.Err(); err != nil {
			return err
		}
		for dict := range d.Dictionaries.All() {
			if err := encodeOne(records.DictionarySchema, dict, d.Version, w); err != nil {
				return err
			}
		}
		for o := range d.ObjectPtrs.All() {
			if err := encodeOne(records.ObjectPtrSchema, o, d.Version, w); err != nil {
				return err
			}
		}
		tw.Tag(0, "ENDSEC")
	}

	tw.Tag(0, "EOF")
	return tw.Err()
}

func encodeOne[R schema.Object](sc *schema.Schema[R], record R, ver schema.Version, w io.Writer) error {
	if err := codec.Encode(sc, record, ver, w); err != nil {
		if errors.Is(err, core.ErrMissingRequired) {
			return nil // 缺必填字段只跳这一条，codec 已记过诊断
		}
		return err
	}
	return nil
}

// WriteFile 编码整张图纸并写入文件
func (d *Document) WriteFile(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return d.Save(file)
}
