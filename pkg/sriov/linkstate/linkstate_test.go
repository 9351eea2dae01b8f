package linkstate

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vishvananda/netlink"
)

var _ = Describe("LinkState", func() {
	Describe("Parse", func() {
		It("should map names to netlink constants", func() {
			s, err := Parse("auto")
			Expect(err).NotTo(HaveOccurred())
			Expect(uint32(s)).To(Equal(uint32(netlink.VF_LINK_STATE_AUTO)))

			s, err = Parse("enable")
			Expect(err).NotTo(HaveOccurred())
			Expect(uint32(s)).To(Equal(uint32(netlink.VF_LINK_STATE_ENABLE)))

			s, err = Parse("disable")
			Expect(err).NotTo(HaveOccurred())
			Expect(uint32(s)).To(Equal(uint32(netlink.VF_LINK_STATE_DISABLE)))
		})

		It("should ignore case and spaces", func() {
			s, err := Parse(" Disable ")
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(Disable))
		})

		It("should return an error for unknown names", func() {
			_, err := Parse("down")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("available: auto, enable, disable"))
		})
	})

	Describe("String", func() {
		It("should return the name of known states", func() {
			Expect(Enable.String()).To(Equal("enable"))
		})

		It("should flag unknown states", func() {
			Expect(State(9).String()).To(Equal("unknown(9)"))
		})
	})
})
