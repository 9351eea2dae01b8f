package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/openshift/net-sriov-tools/pkg/log"
)

var path = "/etc/net-sriov-tools/config.yaml"

const (
	netSriovToolsSysfsNet  = "NET_SRIOV_TOOLS_SYSFS_NET"
	netSriovToolsConfigDir = "NET_SRIOV_TOOLS_CONFIG_DIR"
	netSriovToolsLogLevel  = "NET_SRIOV_TOOLS_LOG_LEVEL"
	netSriovToolsExitCodes = "NET_SRIOV_TOOLS_EXIT_CODES"
)

// Config contains the configuration of the application.
type Config struct {
	// SysfsNet is the directory holding one entry per network interface.
	SysfsNet string `yaml:"sysfsNet"`
	// ConfigDir is the directory where saved VF counts are stored.
	ConfigDir string `yaml:"configDir"`
	LogLevel  string `yaml:"logLevel"`
	// ExitCodes enables a distinct exit code per failure class.
	ExitCodes bool `yaml:"exitCodes"`

	// exitCodesErr holds a failed parse of the env override until it is validated or replaced.
	exitCodesErr error
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		SysfsNet:  "/sys/class/net",
		ConfigDir: "/etc/network/sriov.d",
		LogLevel:  "warn",
	}
}

// ReadConfig reads the yaml config file and applies env var overrides.
// An empty file means the default location, which is allowed to be absent.
// The result is not validated, so that later overrides can still replace invalid values.
func ReadConfig(file string) (Config, error) {
	c := Default()

	explicit := file != ""
	if !explicit {
		file = path
	}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		err = yaml.UnmarshalStrict(data, &c)
		if err != nil {
			return c, fmt.Errorf("failed to unmarshal config file %s: %w", file, err)
		}
		log.Log.Debug("config file loaded", "path", file)
	case !explicit && errors.Is(err, fs.ErrNotExist):
		log.Log.Debug("config file not found, using defaults", "path", file)
	default:
		return c, fmt.Errorf("failed to read config file: %w", err)
	}

	if v, ok := os.LookupEnv(netSriovToolsSysfsNet); ok {
		c.SysfsNet = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv(netSriovToolsConfigDir); ok {
		c.ConfigDir = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv(netSriovToolsLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}

	if v, ok := os.LookupEnv(netSriovToolsExitCodes); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			c.exitCodesErr = fmt.Errorf("failed to parse %s: %w", netSriovToolsExitCodes, err)
		} else {
			c.ExitCodes = b
		}
	}

	return c, nil
}

// SetExitCodes overrides the exit codes setting, discarding any invalid earlier value.
func (c *Config) SetExitCodes(enabled bool) {
	c.ExitCodes = enabled
	c.exitCodesErr = nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.exitCodesErr != nil {
		return c.exitCodesErr
	}

	if c.SysfsNet == "" {
		return fmt.Errorf("sysfs net directory must not be empty")
	}

	if c.ConfigDir == "" {
		return fmt.Errorf("config directory must not be empty")
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
