package cgroups

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("mounting", func() {

	It("does not see cgroups on a plain directory", func() {
		Expect(Successful(ExecMounter{}.Mounted(tempDir()))).To(BeFalse())
	})

	It("finds mount points given in any spelling", func() {
		cwd := Successful(os.Getwd())
		rel := Successful(filepath.Rel(cwd, "/proc"))
		for _, path := range []string{"/proc", "/proc/", "/proc//", "/sys/../proc", rel, rel + "/"} {
			Expect(mountedAs(path, "proc")).To(BeTrue(), "path %q", path)
		}
		Expect(mountedAs("/proc/", "cgroup")).To(BeFalse())
	})

	It("carries the command output", func() {
		err := error(&MountError{Path: "/x", Output: "mount: only root can do that", Err: errors.New("exit status 1")})
		Expect(err).To(MatchError("mount cpuset at /x failed: exit status 1: mount: only root can do that"))
		Expect(errors.Unwrap(err)).To(MatchError("exit status 1"))
	})

})
