package api_test

import (
	"bearer-auth-api/internal/app"
	"bearer-auth-api/internal/app/config"
	"bearer-auth-api/internal/app/ports"
	"os"

	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T { return &v }

// --- Seedable server ---
func newTestServerFromConfig(configPath string) ports.ApiServer {
	data, err := os.ReadFile(configPath)
	Expect(err).NotTo(HaveOccurred())

	cfg, err := config.LoadConfigString(string(data))
	Expect(err).NotTo(HaveOccurred())

	rs, err := app.BuildApiServer(cfg, true)
	Expect(err).NotTo(HaveOccurred())

	return rs
}
