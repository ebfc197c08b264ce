//go:build unix

package app_test

import (
	"bearer-auth-api/internal/app"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PID file", func() {
	It("writes the pid, locks the file and removes it on cleanup", func() {
		path := filepath.Join(GinkgoT().TempDir(), "run", "api.pid")
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("999999\n"), 0o644)).To(Succeed())

		cleanup, err := app.CreatePIDFile(path)
		Expect(err).NotTo(HaveOccurred())

		b, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.TrimSpace(string(b))).To(Equal(strconv.Itoa(os.Getpid())))

		_, err = app.CreatePIDFile(path)
		Expect(err).To(MatchError(ContainSubstring("another instance")))

		cleanup()
		Expect(path).NotTo(BeAnExistingFile())
	})
})
