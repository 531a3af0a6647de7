package cpurange

import "fmt"

// IntError 表示某一段文本不是合法的非负整数
type IntError struct {
	Text string
}

func (e *IntError) Error() string {
	return fmt.Sprintf("error parsing integer %q", e.Text)
}

// BoolError 表示标志文件的内容不是数字
type BoolError struct {
	Text string
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("error parsing boolean %q", e.Text)
}

// FlagValueError 表示标志文件的值既不是 0 也不是 1
type FlagValueError struct {
	Value uint64
}

func (e *FlagValueError) Error() string {
	return fmt.Sprintf("unexpected flag value %d (expected 0 or 1)", e.Value)
}

// FormatError 表示 CPU 列表的格式无法识别
type FormatError struct {
	Text     string
	Expected string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format error '%s' (expected %s)", e.Text, e.Expected)
}
