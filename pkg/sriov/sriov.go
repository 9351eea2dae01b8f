package sriov

import (
	"fmt"

	"github.com/openshift/net-sriov-tools/pkg/interfaces"
	"github.com/openshift/net-sriov-tools/pkg/log"
	"github.com/openshift/net-sriov-tools/pkg/sriov/linkstate"
	"github.com/openshift/net-sriov-tools/pkg/sriov/pf"
	"github.com/openshift/net-sriov-tools/pkg/sriov/vf"
)

// Nics inspects and configures the SR-IOV interfaces of the node.
type Nics struct {
	net interfaces.Sysfs
	nl  interfaces.Netlink
}

// New returns a Nics reading from net. nl is only needed to change VF link states.
func New(net interfaces.Sysfs, nl interfaces.Netlink) *Nics {
	return &Nics{
		net: net,
		nl:  nl,
	}
}

// PFs returns the SR-IOV capable interfaces found in the node.
// When the interface directory cannot be read, an empty list is returned along with the error.
func (n *Nics) PFs() ([]pf.PF, error) {
	pfs := make([]pf.PF, 0)

	names, err := n.net.Interfaces()
	if err != nil {
		return pfs, &Error{Kind: ErrUnreadable, Msg: "failed to read network interfaces", Err: err}
	}

	for _, name := range names {
		total, err := n.net.TotalVFs(name)
		if err != nil {
			log.Log.Debug("interface is not SR-IOV capable", "interface", name, "error", err)
			continue
		}

		p := pf.PF{Name: name, TotalVFs: total}
		if !p.Capable() {
			log.Log.Debug("interface supports no VF", "interface", name)
			continue
		}

		p.Addr, err = n.net.Address(name)
		if err != nil {
			log.Log.Debug("failed to read address", "interface", name, "error", err)
		}

		p.NumVFs, err = n.net.NumVFs(name)
		if err != nil {
			log.Log.Debug("failed to read in-use VFs", "interface", name, "error", err)
		}

		p.PCIeAddr = n.net.PCISlot(name)

		log.Log.Debug("adding interface", "interface", name)
		pfs = append(pfs, p)
	}

	return pfs, nil
}

// VFs returns the VFs of the interface name.
// Every index up to the total supported VFs is probed and VFs without a netdev are skipped.
func (n *Nics) VFs(name string) ([]vf.VF, error) {
	vfs := make([]vf.VF, 0)

	total, err := n.net.TotalVFs(name)
	if err != nil {
		return vfs, &Error{Kind: ErrUnreadable, Msg: fmt.Sprintf("failed to read SR-IOV devices for interface %s", name), Err: err}
	}

	for i := 0; i < total; i++ {
		v := vf.VF{Name: vf.Name(name, i)}

		v.Addr, err = n.net.Address(v.Name)
		if err != nil {
			log.Log.Debug("vf not found", "interface", name, "vf", v.Name, "error", err)
			continue
		}

		v.PCIeAddr = n.net.PCISlot(v.Name)
		v.Driver = n.net.Driver(v.Name)

		vfs = append(vfs, v)
	}

	return vfs, nil
}

// Create sets the number of VFs of the interface name to num.
func (n *Nics) Create(name string, num int) error {
	p := pf.PF{Name: name}

	var err error
	p.TotalVFs, err = n.net.TotalVFs(name)
	if err != nil {
		return &Error{Kind: ErrUnreadable, Msg: fmt.Sprintf("failed to read total VFs for interface %s", name), Err: err}
	}

	if err = p.CheckCapacity(num); err != nil {
		return &Error{Kind: ErrPrecondition, Msg: err.Error()}
	}

	p.NumVFs, err = n.net.NumVFs(name)
	if err != nil {
		return &Error{Kind: ErrUnreadable, Msg: fmt.Sprintf("failed to read in-use VFs for interface %s", name), Err: err}
	}

	if err = p.CheckInUse(num); err != nil {
		return &Error{Kind: ErrPrecondition, Msg: err.Error()}
	}

	err = n.net.SetNumVFs(name, num)
	if err != nil {
		return &Error{Kind: ErrWrite, Msg: fmt.Sprintf("failed to set the number of VFs for interface %s", name), Err: err}
	}

	log.Log.Info("number of VFs was set", "interface", name, "vfs", num)

	return nil
}

// SetVfState sets the link state of the VF with index id of the interface name.
func (n *Nics) SetVfState(name string, id int, state linkstate.State) error {
	num, err := n.net.NumVFs(name)
	if err != nil {
		return &Error{Kind: ErrUnreadable, Msg: fmt.Sprintf("failed to read in-use VFs for interface %s", name), Err: err}
	}

	if id < 0 || id >= num {
		return &Error{Kind: ErrPrecondition, Msg: fmt.Sprintf("interface %s has %d in-use VFs, vf %d does not exist", name, num, id)}
	}

	link, err := n.nl.LinkByName(name)
	if err != nil {
		return &Error{Kind: ErrUnreadable, Msg: fmt.Sprintf("failed to fetch interface %s", name), Err: err}
	}

	err = n.nl.LinkSetVfState(link, id, uint32(state))
	if err != nil {
		return &Error{Kind: ErrWrite, Msg: fmt.Sprintf("failed to set vf %d link state to %s on interface %s", id, state, name), Err: err}
	}

	log.Log.Info("vf link state was set", "id", id, "state", state.String(), "interface", name)

	return nil
}
