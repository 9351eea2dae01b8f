package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vishvananda/netlink"

	"github.com/openshift/net-sriov-tools/pkg/config"
	"github.com/openshift/net-sriov-tools/pkg/interfaces"
	"github.com/openshift/net-sriov-tools/pkg/log"
	"github.com/openshift/net-sriov-tools/pkg/sriov"
	"github.com/openshift/net-sriov-tools/pkg/store"
	"github.com/openshift/net-sriov-tools/pkg/subscribe"
	"github.com/openshift/net-sriov-tools/pkg/sysfs"
)

// Build metadata injected via ldflags.
var version = "dev"

type options struct {
	configFile string
	sysfsNet   string
	configDir  string
	logLevel   string
	exitCodes  bool
}

// subscribeFunc starts a subscription to link changes.
type subscribeFunc func(context.Context) (<-chan netlink.LinkUpdate, error)

// sysfsFunc opens the network interfaces directory root.
type sysfsFunc func(root string) interfaces.Sysfs

type app struct {
	opts      options
	conf      config.Config
	nl        interfaces.Netlink
	subscribe subscribeFunc
	sysfs     sysfsFunc

	nics  *sriov.Nics
	store *store.Store
}

func newApp(nl interfaces.Netlink, subscribe subscribeFunc) *app {
	return &app{
		conf:      config.Default(),
		nl:        nl,
		subscribe: subscribe,
		sysfs: func(root string) interfaces.Sysfs {
			return sysfs.New(root)
		},
	}
}

// Execute runs the command line and returns the exit code of the process.
// Failures of the operations exit with 0 unless exit codes are enabled.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return newApp(&netlink.Handle{}, subscribe.Start).execute(ctx, args, stdout, stderr)
}

func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return sriov.ExitOK
	}

	// Classified errors were already reported by the command.
	if !sriov.IsClassified(err) {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if a.conf.ExitCodes {
		return sriov.ExitCode(err)
	}

	return sriov.ExitOK
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "net-sriov-tools",
		Short:   "SR-IOV network interface card manager",
		Version: version,
		Long: `net-sriov-tools manages SR-IOV virtual functions through sysfs.

It lists SR-IOV capable interfaces and their VFs, sets the number of VFs of an
interface, and saves/loads VF counts so they can be restored after a reboot.`,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.setup(c)
		},
		Run: func(c *cobra.Command, args []string) {
			_ = c.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.configFile, "config", "c", "", "config file (default /etc/net-sriov-tools/config.yaml)")
	flags.StringVar(&a.opts.sysfsNet, "sysfs-net", "", "directory listing network interfaces (default /sys/class/net)")
	flags.StringVar(&a.opts.configDir, "config-dir", "", "directory storing saved VF counts (default /etc/network/sriov.d)")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn or error (default warn)")
	flags.BoolVar(&a.opts.exitCodes, "exit-codes", false, "exit with a distinct code per failure class (2 unreadable, 3 precondition, 4 write)")

	root.AddCommand(
		a.listCommand(),
		a.createCommand(),
		a.saveCommand(),
		a.loadCommand(),
		a.stateCommand(),
	)

	return root
}

// setup builds the configuration from file, env vars and flags, in increasing priority.
func (a *app) setup(c *cobra.Command) error {
	conf, err := config.ReadConfig(a.opts.configFile)
	if err != nil {
		return err
	}

	flags := c.Flags()
	if flags.Changed("sysfs-net") {
		conf.SysfsNet = a.opts.sysfsNet
	}
	if flags.Changed("config-dir") {
		conf.ConfigDir = a.opts.configDir
	}
	if flags.Changed("log-level") {
		conf.LogLevel = a.opts.logLevel
	}
	if flags.Changed("exit-codes") {
		conf.SetExitCodes(a.opts.exitCodes)
	}

	if err = conf.Validate(); err != nil {
		return err
	}

	if err = log.SetLevel(conf.LogLevel); err != nil {
		return err
	}

	a.conf = conf
	net := a.sysfs(conf.SysfsNet)
	a.nics = sriov.New(net, a.nl)
	a.store = store.New(conf.ConfigDir, net)

	log.Log.Debug("configuration", "sysfsNet", conf.SysfsNet, "configDir", conf.ConfigDir, "exitCodes", conf.ExitCodes)

	return nil
}

// report writes a diagnostic for err to the error stream.
func report(c *cobra.Command, err error) {
	fmt.Fprintln(c.ErrOrStderr(), err)
}
