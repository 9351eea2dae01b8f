package interfaces

import "github.com/vishvananda/netlink"

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=interfaces

// Netlink is the subset of netlink operations used to inspect PFs and drive their VFs.
type Netlink interface {
	LinkByName(string) (netlink.Link, error)
	LinkSetVfState(netlink.Link, int, uint32) error
}

// Sysfs is the set of SR-IOV attributes read and written under the network interfaces directory.
type Sysfs interface {
	Interfaces() ([]string, error)
	TotalVFs(string) (int, error)
	NumVFs(string) (int, error)
	SetNumVFs(string, int) error
	Address(string) (string, error)
	PCISlot(string) string
	Driver(string) string
}
