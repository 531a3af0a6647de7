package cgroups

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"cpusetctl/cgroups/cpurange"
	"cpusetctl/constant"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("loading sets", func() {

	var dir string

	BeforeEach(func() {
		dir = filepath.Join(tempDir(), "group0")
		Expect(os.Mkdir(dir, constant.Perm0755)).To(Succeed())
	})

	It("loads a range set", func() {
		populate(dir, "0-3\n", "1\n")
		Expect(LoadSet(HostFS{}, dir)).To(Equal(Set{
			Name:         "group0",
			Cpus:         cpurange.NewRange(0, 3),
			CpuExclusive: true,
		}))
	})

	It("loads an empty set", func() {
		populate(dir, "\n", "0\n")
		set := Successful(LoadSet(HostFS{}, dir+"/"))
		Expect(set.Name).To(Equal("group0"))
		Expect(set.Cpus.Kind()).To(Equal(cpurange.None))
		Expect(set.CpuExclusive).To(BeFalse())
		Expect(set.String()).To(Equal(`group0 cpus="" exclusive=false`))
	})

	It("fails on missing control files", func() {
		_, err := LoadSet(HostFS{}, dir)
		var ioerr *IOError
		Expect(errors.As(err, &ioerr)).To(BeTrue())
		Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	})

	It("fails on a missing exclusive flag", func() {
		Expect(os.WriteFile(filepath.Join(dir, constant.CpusetCpus), []byte("1\n"), constant.Perm0644)).To(Succeed())
		_, err := LoadSet(HostFS{}, dir)
		Expect(err).To(MatchError(ContainSubstring(constant.CpusetCpuExclusive)))
		var ioerr *IOError
		Expect(errors.As(err, &ioerr)).To(BeTrue())
	})

	It("reports malformed cpu lists", func() {
		populate(dir, "1-2-3\n", "0\n")
		_, err := LoadSet(HostFS{}, dir)
		var ferr *cpurange.FormatError
		Expect(errors.As(err, &ferr)).To(BeTrue())
		Expect(ferr.Text).To(Equal("1-2-3"))
	})

	It("reports non-numeric exclusive flags", func() {
		populate(dir, "0\n", "true\n")
		_, err := LoadSet(HostFS{}, dir)
		var berr *cpurange.BoolError
		Expect(errors.As(err, &berr)).To(BeTrue())
	})

	It("reports unexpected exclusive flag values", func() {
		populate(dir, "0\n", "2\n")
		_, err := LoadSet(HostFS{}, dir)
		var verr *cpurange.FlagValueError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Value).To(BeNumerically("==", 2))
	})

	DescribeTable("rejecting paths without a name",
		func(path string) {
			_, err := LoadSet(HostFS{}, path)
			var perr *InvalidSetPathError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Path).To(Equal(path))
		},
		Entry(nil, ""),
		Entry(nil, "/"),
		Entry(nil, "."),
		Entry(nil, "a/.."),
		Entry(nil, ".."),
	)

	DescribeTable("validating names",
		func(name string, valid bool) {
			err := validName(name)
			if valid {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			var nerr *InvalidNameError
			Expect(errors.As(err, &nerr)).To(BeTrue())
		},
		Entry(nil, "group0", true),
		Entry(nil, "rt.cpus", true),
		Entry(nil, "", false),
		Entry(nil, ".", false),
		Entry(nil, "..", false),
		Entry(nil, "a/b", false),
		Entry(nil, "a/", false),
	)

})
