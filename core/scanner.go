package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Scanner 从字符流中逐个拉取 (组码, 值) 标签对，并维护 1 起始的行号用于诊断
type Scanner struct {
	reader  *bufio.Reader
	source  string
	line    int
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// NewFileScanner 与 NewScanner 相同，但诊断信息会带上来源名（通常是文件名）
func NewFileScanner(r io.Reader, source string) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		source: source,
	}
}

// Source 返回来源名，未设置时为空串
func (s *Scanner) Source() string {
	return s.source
}

// Line 返回最近一次成功读取所在的行号（1 起始）
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) Next() bool {
	// 1. 读取 Code 行
	codeLine, err := s.readLine()
	if err != nil {
		if err != io.EOF {
			s.err = &StreamError{Source: s.source, Line: s.line, Err: err}
		}
		return false
	}

	codeStr := strings.TrimSpace(codeLine)
	if codeStr == "" { // 跳过空行
		return s.Next()
	}

	// 组码按数值解析，而不是字符串字面量比较，前导空格（如 "  5"）不影响匹配
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		s.err = &TagError{Source: s.source, Line: s.line, Value: codeStr, Err: ErrMalformedTag}
		return false
	}

	// 2. 读取 Value 行
	valueLine, err := s.readLine()
	if err != nil {
		// Value 行如果 EOF 也是不完整的
		if err == io.EOF {
			err = ErrMalformedTag
		}
		s.err = &TagError{Source: s.source, Line: s.line, Code: code, Err: err}
		return false
	}

	// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
	value := strings.TrimRight(valueLine, "\r\n")

	s.LastTag = Tag{Code: code, Value: value}
	return true
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		// 最后一行没有换行符也算一行
		err = nil
	}
	if err == nil {
		s.line++
	}
	return line, err
}

func (s *Scanner) Err() error {
	return s.err
}
