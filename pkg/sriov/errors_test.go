package sriov

import (
	"errors"
	"fmt"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("Error", func() {
		It("should include the underlying error in the message", func() {
			err := &Error{Kind: ErrUnreadable, Msg: "failed to read total VFs for interface eth0", Err: os.ErrNotExist}
			Expect(err.Error()).To(Equal("failed to read total VFs for interface eth0: file does not exist"))
		})

		It("should match both the class and the underlying error", func() {
			err := fmt.Errorf("wrapped: %w", &Error{Kind: ErrWrite, Msg: "write", Err: os.ErrPermission})
			Expect(errors.Is(err, ErrWrite)).To(BeTrue())
			Expect(errors.Is(err, os.ErrPermission)).To(BeTrue())
			Expect(errors.Is(err, ErrUnreadable)).To(BeFalse())
		})
	})

	Describe("ExitCode", func() {
		It("should map each class to its code", func() {
			Expect(ExitCode(nil)).To(Equal(ExitOK))
			Expect(ExitCode(&Error{Kind: ErrUnreadable})).To(Equal(ExitUnreadable))
			Expect(ExitCode(&Error{Kind: ErrPrecondition})).To(Equal(ExitPrecondition))
			Expect(ExitCode(&Error{Kind: ErrWrite})).To(Equal(ExitWrite))
		})

		It("should give precedence to unreadable attributes in joined errors", func() {
			err := errors.Join(&Error{Kind: ErrWrite}, &Error{Kind: ErrUnreadable})
			Expect(ExitCode(err)).To(Equal(ExitUnreadable))
		})

		It("should ignore unclassified errors", func() {
			err := errors.New("boom")
			Expect(ExitCode(err)).To(Equal(ExitOK))
			Expect(IsClassified(err)).To(BeFalse())
		})
	})
})
