// Package sysfs reads and writes the SR-IOV attributes the kernel exposes for network interfaces.
package sysfs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openshift/net-sriov-tools/pkg/log"
)

const (
	// NotAvailable is reported for attributes that cannot be read.
	NotAvailable = "N/A"

	totalVfsFile = "device/sriov_totalvfs"
	numVfsFile   = "device/sriov_numvfs"
	addressFile  = "address"
	ueventFile   = "device/uevent"
	driverLink   = "device/driver"

	pciSlotKey = "PCI_SLOT_NAME="
)

// Net gives access to a directory laid out like /sys/class/net.
type Net struct {
	// Root is the directory holding one entry per network interface.
	Root string
}

// New returns a Net rooted at root.
func New(root string) *Net {
	return &Net{Root: root}
}

func (n *Net) path(name, attr string) string {
	return filepath.Join(n.Root, name, attr)
}

// Interfaces returns the names of the entries found in the root directory, sorted by name.
func (n *Net) Interfaces() ([]string, error) {
	entries, err := os.ReadDir(n.Root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}

// TotalVFs returns the number of VFs the device supports.
func (n *Net) TotalVFs(name string) (int, error) {
	return readInt(n.path(name, totalVfsFile))
}

// NumVFs returns the number of VFs currently enabled on the device.
func (n *Net) NumVFs(name string) (int, error) {
	return readInt(n.path(name, numVfsFile))
}

// SetNumVFs writes the number of VFs to enable. The attribute must already exist.
func (n *Net) SetNumVFs(name string, num int) error {
	p := n.path(name, numVfsFile)
	log.Log.Debug("writing attribute", "path", p, "value", num)

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}

	_, err = f.WriteString(strconv.Itoa(num))
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// Address returns the hardware address of the interface.
func (n *Net) Address(name string) (string, error) {
	data, err := os.ReadFile(n.path(name, addressFile))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

// PCISlot returns the PCI slot name found in the device uevent file, or NotAvailable.
func (n *Net) PCISlot(name string) string {
	p := n.path(name, ueventFile)
	data, err := os.ReadFile(p)
	if err != nil {
		log.Log.Debug("failed to read uevent", "path", p, "error", err)
		return NotAvailable
	}

	slot, ok := parseUevent(data)
	if !ok {
		log.Log.Debug("no PCI slot name in uevent", "path", p)
		return NotAvailable
	}

	return slot
}

// Driver returns the name of the driver bound to the device, or NotAvailable.
func (n *Net) Driver(name string) string {
	p := n.path(name, driverLink)
	target, err := os.Readlink(p)
	if err != nil {
		log.Log.Debug("failed to read driver link", "path", p, "error", err)
		return NotAvailable
	}

	return filepath.Base(target)
}

func parseUevent(data []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, pciSlotKey) {
			return strings.TrimPrefix(line, pciSlotKey), true
		}
	}

	return "", false
}

// readInt reads a decimal attribute. Content that does not parse is reported as 0.
func readInt(p string) (int, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil || v < 0 {
		log.Log.Warn("unparsable attribute, assuming 0", "path", p, "content", string(bytes.TrimSpace(data)))
		return 0, nil
	}

	return v, nil
}
