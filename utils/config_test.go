package utils_test

import (
	"os"
	"time"

	"relview/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	variables := []string{"URL_PREFIX", "DEPTH_LIMIT", "CACHE_TTL", "LOG_LEVEL"}
	saved := make(map[string]string)

	BeforeEach(func() {
		for _, name := range variables {
			saved[name] = os.Getenv(name)
			os.Unsetenv(name)
		}
	})

	AfterEach(func() {
		for _, name := range variables {
			os.Setenv(name, saved[name])
		}
	})

	It("has defaults", func() {
		config := utils.GetConfig()

		Expect(config.UrlPrefix).To(Equal("/relview"))
		Expect(config.DepthLimit).To(Equal(2))
		Expect(config.CacheTTL).To(Equal(5 * time.Minute))
		Expect(config.LogLevel).To(Equal("info"))
	})

	It("reads the environment", func() {
		os.Setenv("URL_PREFIX", "/api")
		os.Setenv("DEPTH_LIMIT", "4")
		os.Setenv("CACHE_TTL", "30s")

		config := utils.GetConfig()
		Expect(config.UrlPrefix).To(Equal("/api"))
		Expect(config.DepthLimit).To(Equal(4))
		Expect(config.CacheTTL).To(Equal(30 * time.Second))
	})

	It("ignores a wrong depth limit", func() {
		os.Setenv("DEPTH_LIMIT", "deep")

		Expect(utils.GetConfig().DepthLimit).To(Equal(2))
	})
})
