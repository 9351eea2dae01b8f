package linkstate

import (
	"fmt"
	"strings"

	"github.com/vishvananda/netlink"
)

// State is the administrative link state of a VF.
type State uint32

// VF link state constants
const (
	Auto    = State(netlink.VF_LINK_STATE_AUTO)
	Enable  = State(netlink.VF_LINK_STATE_ENABLE)
	Disable = State(netlink.VF_LINK_STATE_DISABLE)
)

var names = map[State]string{
	Auto:    "auto",
	Enable:  "enable",
	Disable: "disable",
}

// Names returns the accepted state names.
func Names() []string {
	return []string{names[Auto], names[Enable], names[Disable]}
}

// Parse converts a state name to a State. Case is ignored.
func Parse(s string) (State, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for state, name := range names {
		if name == s {
			return state, nil
		}
	}

	return Auto, fmt.Errorf("unknown link state %q (available: %s)", s, strings.Join(Names(), ", "))
}

func (s State) String() string {
	if name, ok := names[s]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", uint32(s))
}
