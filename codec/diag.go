// Package codec 是通用的记录编解码引擎：拿一个 schema 字段表驱动
// core.Scanner / core.Writer，把标签流还原成记录，再把记录写回标签流。
package codec

import (
	"os"

	"github.com/rs/zerolog"
)

// 非致命诊断（未知组码、版本不符、999 注释）走这里，不中断解码。
// 默认输出到 stderr；999 注释记在 Info 级，所以默认级别取 Info，
// 宿主程序可整体替换。
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// SetLogger 替换诊断日志器（例如静默：SetLogger(zerolog.Nop())）
func SetLogger(l zerolog.Logger) {
	logger = l
}
