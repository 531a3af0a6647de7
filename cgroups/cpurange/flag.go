package cpurange

// ParseFlag 解析 cpuset.cpu_exclusive 这类 0/1 标志文件
func ParseFlag(s string) (bool, error) {
	s = TrimLineEndings(s)
	n, ok := scanUint(s)
	if !ok {
		return false, &BoolError{Text: s}
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &FlagValueError{Value: n}
}

// FormatFlag 将 bool 转换为内核接受的 0/1
func FormatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
