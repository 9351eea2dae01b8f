package pf

import (
	"fmt"
)

// PF contains information about an SR-IOV capable physical function.
type PF struct {
	// Name is the name of the interface.
	Name string `json:"Name"`
	// Addr is the hardware address of the interface.
	Addr string `json:"Addr"`
	// PCIeAddr is the PCI slot of the device.
	PCIeAddr string `json:"PCIeAddr"`
	// TotalVFs is the maximum number of VFs supported by the device.
	TotalVFs int `json:"Max-VF"`
	// NumVFs is the number of VFs currently enabled.
	NumVFs int `json:"Inuse-VF"`
}

// Capable reports whether the device can expose VFs.
func (p *PF) Capable() bool {
	return p.TotalVFs > 0
}

// CheckCapacity verifies that num VFs fit in the device.
func (p *PF) CheckCapacity(num int) error {
	if num < 0 {
		return fmt.Errorf("invalid number of VFs %d for interface %s", num, p.Name)
	}

	if num > p.TotalVFs {
		return fmt.Errorf("requested VFs (%d) exceed the maximum supported VFs (%d) for interface %s", num, p.TotalVFs, p.Name)
	}

	return nil
}

// CheckInUse verifies that the number of VFs can be changed to num.
// Going back to 0 is always allowed; any other value requires that no VF is enabled.
func (p *PF) CheckInUse(num int) error {
	if p.NumVFs > 0 && num > 0 {
		return fmt.Errorf("interface %s has %d in-use VFs, please remove them first", p.Name, p.NumVFs)
	}

	return nil
}
