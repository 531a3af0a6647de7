// Package cpurange 负责 cpuset.cpus 等控制文件的文本编解码
package cpurange

import (
	"strconv"
	"strings"
)

// Kind 表示 CpuRange 的具体形式
type Kind int

const (
	// None 没有分配任何 CPU，对应空文件
	None Kind = iota
	// List 逗号分隔的 CPU 编号，例如 0,1,2
	List
	// Range 闭区间，例如 0-3
	Range
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case List:
		return "list"
	case Range:
		return "range"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ExpectedFormat 是格式错误时提示的期望格式
const ExpectedFormat = "0-1 or 0,1,2"

// CpuRange 是 cpuset.cpus 内容的模型
// Range{0,1} 与 List{0,1} 对内核来说等价，但这里保留两者的区别，
// 以便按创建时的写法原样写回
type CpuRange struct {
	kind  Kind
	cpus  []uint
	start uint
	end   uint
}

// NewNone 返回不包含任何 CPU 的 CpuRange
func NewNone() CpuRange {
	return CpuRange{kind: None}
}

// NewList 返回由给定 CPU 编号组成的列表，至少需要一个编号
func NewList(cpus ...uint) CpuRange {
	if len(cpus) == 0 {
		panic("cpurange: empty list")
	}
	return CpuRange{kind: List, cpus: append([]uint(nil), cpus...)}
}

// NewRange 返回 [start, end] 闭区间
func NewRange(start, end uint) CpuRange {
	return CpuRange{kind: Range, start: start, end: end}
}

func (r CpuRange) Kind() Kind {
	return r.kind
}

// List 返回 List 形式下的 CPU 编号副本，其他形式返回 nil
func (r CpuRange) List() []uint {
	if r.kind != List {
		return nil
	}
	return append([]uint(nil), r.cpus...)
}

// Bounds 返回 Range 形式下的上下界
func (r CpuRange) Bounds() (start, end uint, ok bool) {
	if r.kind != Range {
		return 0, 0, false
	}
	return r.start, r.end, true
}

// Cpus 将 CpuRange 展开为具体的 CPU 编号
func (r CpuRange) Cpus() []uint {
	switch r.kind {
	case List:
		return r.List()
	case Range:
		if r.start > r.end {
			return nil
		}
		cpus := make([]uint, 0, r.end-r.start+1)
		for cpu := r.start; cpu <= r.end; cpu++ {
			cpus = append(cpus, cpu)
		}
		return cpus
	}
	return nil
}

// Equal 判断两个 CpuRange 的形式和内容是否都相同
func (r CpuRange) Equal(other CpuRange) bool {
	if r.kind != other.kind {
		return false
	}
	switch r.kind {
	case List:
		if len(r.cpus) != len(other.cpus) {
			return false
		}
		for i := range r.cpus {
			if r.cpus[i] != other.cpus[i] {
				return false
			}
		}
	case Range:
		return r.start == other.start && r.end == other.end
	}
	return true
}

// String 按内核接受的格式序列化
func (r CpuRange) String() string {
	switch r.kind {
	case List:
		v := make([]string, 0, len(r.cpus))
		for _, cpu := range r.cpus {
			v = append(v, strconv.FormatUint(uint64(cpu), 10))
		}
		return strings.Join(v, ",")
	case Range:
		return strconv.FormatUint(uint64(r.start), 10) + "-" + strconv.FormatUint(uint64(r.end), 10)
	}
	return ""
}

// Parse 解析 cpuset.cpus 的内容，支持以下几种写法：
//   - 空字符串（忽略行尾的 \r\n）
//   - 逗号分隔的列表，例如 0,2,4
//   - 闭区间，例如 0-3
//   - 单个 CPU，例如 5，解析为只有一个元素的列表
func Parse(s string) (CpuRange, error) {
	s = TrimLineEndings(s)
	if s == "" {
		return NewNone(), nil
	}

	switch {
	case strings.Contains(s, ","):
		var cpus []uint
		for _, seg := range strings.Split(s, ",") {
			cpu, err := parseCpu(seg)
			if err != nil {
				return CpuRange{}, err
			}
			cpus = append(cpus, cpu)
		}
		return CpuRange{kind: List, cpus: cpus}, nil

	case strings.Contains(s, "-"):
		segs := strings.Split(s, "-")
		bounds := make([]uint, 0, len(segs))
		for _, seg := range segs {
			cpu, err := parseCpu(seg)
			if err != nil {
				return CpuRange{}, err
			}
			bounds = append(bounds, cpu)
		}
		if len(bounds) != 2 {
			return CpuRange{}, &FormatError{Text: s, Expected: ExpectedFormat}
		}
		return NewRange(bounds[0], bounds[1]), nil
	}

	cpu, err := parseCpu(s)
	if err != nil {
		return CpuRange{}, err
	}
	return NewList(cpu), nil
}

// TrimLineEndings 去掉内核文件末尾的换行符
func TrimLineEndings(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// parseCpu 解析一个非负整数，整段文本都必须是数字
func parseCpu(s string) (uint, error) {
	n, ok := scanUint(s)
	if !ok || uint64(uint(n)) != n {
		return 0, &IntError{Text: s}
	}
	return uint(n), nil
}
