package store

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/openshift/net-sriov-tools/pkg/sriov"
	"github.com/openshift/net-sriov-tools/pkg/sysfs"
	"github.com/openshift/net-sriov-tools/pkg/sysfs/sysfstest"
)

var _ = Describe("Store", func() {
	var (
		fake    *sysfstest.Fake
		dir     string
		confDir string
		s       *Store
	)

	BeforeEach(func() {
		var err error
		fake, err = sysfstest.New()
		Expect(err).NotTo(HaveOccurred())

		dir, err = os.MkdirTemp("", "sriov.d")
		Expect(err).NotTo(HaveOccurred())

		confDir = filepath.Join(dir, "network", "sriov.d")
		s = New(confDir, sysfs.New(fake.Root))

		Expect(fake.AddPF("eth0", "aa:bb:cc:dd:ee:00", "0000:3b:00.0", 8, 4)).To(Succeed())
		Expect(fake.AddPF("eth1", "aa:bb:cc:dd:ee:01", "0000:3b:00.1", 8, 0)).To(Succeed())
		Expect(fake.AddPF("eth2", "aa:bb:cc:dd:ee:02", "0000:3c:00.0", 0, 0)).To(Succeed())
		Expect(fake.AddInterface("lo", "00:00:00:00:00:00")).To(Succeed())
	})

	AfterEach(func() {
		Expect(fake.Cleanup()).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	readConfig := func(name string) string {
		data, err := os.ReadFile(filepath.Join(confDir, name))
		Expect(err).NotTo(HaveOccurred())
		return string(data)
	}

	numVfs := func(name string) string {
		content, err := fake.ReadAttr(name, "device/sriov_numvfs")
		Expect(err).NotTo(HaveOccurred())
		return content
	}

	Describe("Save", func() {
		It("should create the directory and write one file per capable interface", func() {
			results, err := s.Save()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]Result{
				{Interface: "eth0", Path: filepath.Join(confDir, "eth0"), NumVFs: 4},
				{Interface: "eth1", Path: filepath.Join(confDir, "eth1"), NumVFs: 0},
			}))

			Expect(readConfig("eth0")).To(Equal("4\n"))
			Expect(readConfig("eth1")).To(Equal("0\n"))

			_, err = os.Stat(filepath.Join(confDir, "eth2"))
			Expect(os.IsNotExist(err)).To(BeTrue())
			_, err = os.Stat(filepath.Join(confDir, "lo"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should overwrite existing files", func() {
			Expect(os.MkdirAll(confDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(confDir, "eth0"), []byte("16\n"), 0o644)).To(Succeed())

			_, err := s.Save()
			Expect(err).NotTo(HaveOccurred())
			Expect(readConfig("eth0")).To(Equal("4\n"))
		})

		It("should report a failing interface without stopping the others", func() {
			Expect(fake.RemoveAttr("eth0", "device/sriov_numvfs")).To(Succeed())

			results, err := s.Save()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))

			Expect(results[0].Interface).To(Equal("eth0"))
			Expect(errors.Is(results[0].Err, sriov.ErrUnreadable)).To(BeTrue())

			Expect(results[1].Interface).To(Equal("eth1"))
			Expect(results[1].Err).NotTo(HaveOccurred())
			Expect(readConfig("eth1")).To(Equal("0\n"))
		})

		It("should fail when the directory cannot be created", func() {
			blocker := filepath.Join(dir, "file")
			Expect(os.WriteFile(blocker, nil, 0o644)).To(Succeed())
			s = New(filepath.Join(blocker, "sriov.d"), sysfs.New(fake.Root))

			_, err := s.Save()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, sriov.ErrWrite)).To(BeTrue())
		})
	})

	Describe("Load", func() {
		It("should write the saved values to the interfaces", func() {
			Expect(os.MkdirAll(confDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(confDir, "eth1"), []byte("3\n"), 0o644)).To(Succeed())

			results, err := s.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]Result{{Interface: "eth1", Path: filepath.Join(confDir, "eth1"), NumVFs: 3}}))
			Expect(numVfs("eth1")).To(Equal("3"))
		})

		It("should apply 0 when the file does not parse", func() {
			Expect(os.MkdirAll(confDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(confDir, "eth0"), []byte("many\n"), 0o644)).To(Succeed())

			results, err := s.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(results[0].Err).NotTo(HaveOccurred())
			Expect(numVfs("eth0")).To(Equal("0"))
		})

		It("should report interfaces that do not exist without stopping the others", func() {
			Expect(os.MkdirAll(confDir, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(confDir, "eth1"), []byte("2\n"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(confDir, "eth9"), []byte("2\n"), 0o644)).To(Succeed())

			results, err := s.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Err).NotTo(HaveOccurred())
			Expect(errors.Is(results[1].Err, sriov.ErrWrite)).To(BeTrue())
			Expect(numVfs("eth1")).To(Equal("2"))
		})

		It("should report entries that are not files", func() {
			Expect(os.MkdirAll(filepath.Join(confDir, "eth1"), 0o755)).To(Succeed())

			results, err := s.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			Expect(errors.Is(results[0].Err, sriov.ErrUnreadable)).To(BeTrue())
		})

		It("should fail when the directory cannot be read", func() {
			_, err := s.Load()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, sriov.ErrUnreadable)).To(BeTrue())
		})
	})

	Describe("Save and Load", func() {
		It("should restore the saved values", func() {
			_, err := s.Save()
			Expect(err).NotTo(HaveOccurred())

			Expect(fake.WriteAttr("eth0", "device/sriov_numvfs", "0\n")).To(Succeed())

			_, err = s.Load()
			Expect(err).NotTo(HaveOccurred())

			Expect(numVfs("eth0")).To(Equal("4"))
			Expect(numVfs("eth1")).To(Equal("0"))
		})

		It("should be idempotent when the kernel state does not change", func() {
			_, err := s.Save()
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Load()
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Save()
			Expect(err).NotTo(HaveOccurred())
			Expect(readConfig("eth0")).To(Equal("4\n"))
			Expect(readConfig("eth1")).To(Equal("0\n"))
		})
	})
})
