// Package sysfstest builds fake /sys/class/net trees for tests.
package sysfstest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Fake is a temporary directory laid out like /sys/class/net.
type Fake struct {
	Root string
}

// New creates an empty fake tree.
func New() (*Fake, error) {
	root, err := os.MkdirTemp("", "sysfs-net")
	if err != nil {
		return nil, err
	}

	return &Fake{Root: root}, nil
}

// Cleanup removes the tree.
func (f *Fake) Cleanup() error {
	return os.RemoveAll(f.Root)
}

// AddInterface creates an interface without any SR-IOV attribute.
func (f *Fake) AddInterface(name, addr string) error {
	if err := os.MkdirAll(filepath.Join(f.Root, name, "device"), 0o755); err != nil {
		return err
	}

	return f.WriteAttr(name, "address", addr+"\n")
}

// AddPF creates an SR-IOV capable interface.
func (f *Fake) AddPF(name, addr, slot string, total, num int) error {
	if err := f.AddInterface(name, addr); err != nil {
		return err
	}

	if err := f.WriteAttr(name, "device/uevent", fmt.Sprintf("DRIVER=ice\nPCI_CLASS=20000\nPCI_SLOT_NAME=%s\n", slot)); err != nil {
		return err
	}

	if err := f.WriteAttr(name, "device/sriov_totalvfs", strconv.Itoa(total)+"\n"); err != nil {
		return err
	}

	return f.WriteAttr(name, "device/sriov_numvfs", strconv.Itoa(num)+"\n")
}

// AddVF creates a VF interface bound to driver. An empty driver leaves the link out.
func (f *Fake) AddVF(name, addr, slot, driver string) error {
	if err := f.AddInterface(name, addr); err != nil {
		return err
	}

	if err := f.WriteAttr(name, "device/uevent", fmt.Sprintf("PCI_SLOT_NAME=%s\n", slot)); err != nil {
		return err
	}

	if driver == "" {
		return nil
	}

	return os.Symlink(filepath.Join("../../../bus/pci/drivers", driver), filepath.Join(f.Root, name, "device/driver"))
}

// WriteAttr writes content to an attribute of an interface.
func (f *Fake) WriteAttr(name, attr, content string) error {
	return os.WriteFile(filepath.Join(f.Root, name, attr), []byte(content), 0o644)
}

// ReadAttr returns the content of an attribute of an interface.
func (f *Fake) ReadAttr(name, attr string) (string, error) {
	data, err := os.ReadFile(filepath.Join(f.Root, name, attr))
	return string(data), err
}

// RemoveAttr deletes an attribute of an interface.
func (f *Fake) RemoveAttr(name, attr string) error {
	return os.Remove(filepath.Join(f.Root, name, attr))
}
