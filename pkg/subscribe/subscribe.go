package subscribe

import (
	"context"
	"fmt"
	"sort"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/openshift/net-sriov-tools/pkg/interfaces"
	"github.com/openshift/net-sriov-tools/pkg/log"
)

// Start starts subscription to link changes. The subscription ends when ctx is done,
// after which pending updates are discarded until netlink closes the channel.
func Start(ctx context.Context) (<-chan netlink.LinkUpdate, error) {
	log.Log.Debug("subscribing to link changes")
	update := make(chan netlink.LinkUpdate)

	err := netlink.LinkSubscribe(update, ctx.Done())
	if err != nil {
		return nil, err
	}

	go drain(ctx, update)

	return update, nil
}

// drain consumes updates once ctx is done so that the netlink receiver is never blocked on a send.
func drain(ctx context.Context, updates <-chan netlink.LinkUpdate) {
	<-ctx.Done()
	for range updates {
	}
	log.Log.Debug("link subscription closed")
}

// WaitForLinks blocks until every link in names exists or ctx is done.
// Links already present are looked up first, the rest are matched against RTM_NEWLINK updates.
func WaitForLinks(ctx context.Context, nl interfaces.Netlink, updates <-chan netlink.LinkUpdate, names []string) error {
	pending := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, err := nl.LinkByName(name); err == nil {
			log.Log.Debug("link found", "interface", name)
			continue
		}
		pending[name] = struct{}{}
	}

	for len(pending) > 0 {
		select {
		case u, ok := <-updates:
			if !ok {
				return fmt.Errorf("link subscription closed while waiting for %v", sorted(pending))
			}

			if u.Link == nil {
				continue
			}

			name := u.Attrs().Name
			log.Log.Debug("event received", "interface", name, "type", u.Header.Type)
			if u.Header.Type != unix.RTM_NEWLINK {
				continue
			}

			if _, ok := pending[name]; ok {
				log.Log.Debug("link appeared", "interface", name)
				delete(pending, name)
			}
		case <-ctx.Done():
			return fmt.Errorf("links %v did not appear: %w", sorted(pending), ctx.Err())
		}
	}

	return nil
}

func sorted(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
