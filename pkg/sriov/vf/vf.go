package vf

import "fmt"

// VF contains information about a virtual function netdev.
type VF struct {
	Name     string `json:"Name"`
	Addr     string `json:"Addr"`
	PCIeAddr string `json:"PCIeAddr"`
	Driver   string `json:"Driver"`
}

// Name returns the interface name given to the VF with the given index of pf.
func Name(pf string, index int) string {
	return fmt.Sprintf("%sv%d", pf, index)
}

// Names returns the interface names of the first n VFs of pf.
func Names(pf string, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, Name(pf, i))
	}

	return names
}
