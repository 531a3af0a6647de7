package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cpusetctl/cgroups"
)

// printSets 使用 tabwriter 在控制台打印对齐的表格
func printSets(out io.Writer, sets []cgroups.Set) error {
	w := tabwriter.NewWriter(out, 12, 1, 3, ' ', 0)
	if _, err := fmt.Fprint(w, "NAME\tCPUS\tEXCLUSIVE\n"); err != nil {
		return err
	}
	for _, set := range sets {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%t\n", set.Name, set.Cpus, set.CpuExclusive); err != nil {
			return err
		}
	}
	return w.Flush()
}
