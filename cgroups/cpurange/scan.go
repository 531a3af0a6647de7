package cpurange

import (
	"strconv"
	"strings"

	"github.com/thediveo/faf"
)

// scanUint 解析整段文本为一个十进制非负整数
func scanUint(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	bs := faf.NewBytestring([]byte(s))
	n, ok := bs.Uint64()
	if !ok || !bs.EOL() {
		return 0, false
	}
	// faf 在超过 uint64 时会回绕，写回十进制后与原文比较
	digits := strings.TrimLeft(s, "0")
	if digits == "" {
		digits = "0"
	}
	if strconv.FormatUint(n, 10) != digits {
		return 0, false
	}
	return n, true
}
