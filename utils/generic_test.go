package utils_test

import (
	"relview/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Generic helpers", func() {
	It("finds strings", func() {
		names := []string{"id", "name"}

		Expect(utils.IndexOf(names, "name")).To(Equal(1))
		Expect(utils.IndexOf(names, "email")).To(Equal(-1))
		Expect(utils.Contains(names, "id")).To(BeTrue())
	})
})
