// Package store persists the number of VFs of every SR-IOV interface and applies it back.
//
// The store is a directory holding one file per interface, named after the interface,
// whose content is the decimal number of VFs followed by a newline.
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/openshift/net-sriov-tools/pkg/interfaces"
	"github.com/openshift/net-sriov-tools/pkg/log"
	"github.com/openshift/net-sriov-tools/pkg/sriov"
)

// Result is the outcome of saving or loading the configuration of one interface.
type Result struct {
	// Interface is the name of the interface.
	Interface string
	// Path is the configuration file of the interface.
	Path string
	// NumVFs is the number of VFs saved or applied.
	NumVFs int
	// Err is set when the interface could not be processed.
	Err error
}

// Store saves and loads VF counts.
type Store struct {
	dir string
	net interfaces.Sysfs
}

// New returns a Store keeping its files in dir.
func New(dir string, net interfaces.Sysfs) *Store {
	return &Store{
		dir: dir,
		net: net,
	}
}

// Save writes the current number of VFs of every SR-IOV capable interface.
// The returned error is set only when nothing could be saved; per interface failures are in the results.
func (s *Store) Save() ([]Result, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, &sriov.Error{Kind: sriov.ErrWrite, Msg: "failed to create configuration directory", Err: err}
	}

	names, err := s.net.Interfaces()
	if err != nil {
		return nil, &sriov.Error{Kind: sriov.ErrUnreadable, Msg: "failed to read network interfaces", Err: err}
	}

	results := make([]Result, 0)
	for _, name := range names {
		total, err := s.net.TotalVFs(name)
		if err != nil || total == 0 {
			continue
		}

		r := Result{Interface: name, Path: filepath.Join(s.dir, name)}

		r.NumVFs, err = s.net.NumVFs(name)
		if err != nil {
			r.Err = &sriov.Error{Kind: sriov.ErrUnreadable, Msg: fmt.Sprintf("failed to read in-use VFs for interface %s", name), Err: err}
			results = append(results, r)
			continue
		}

		err = os.WriteFile(r.Path, []byte(strconv.Itoa(r.NumVFs)+"\n"), 0o644)
		if err != nil {
			r.Err = &sriov.Error{Kind: sriov.ErrWrite, Msg: fmt.Sprintf("failed to write configuration for interface %s", name), Err: err}
		} else {
			log.Log.Info("configuration saved", "interface", name, "vfs", r.NumVFs, "path", r.Path)
		}
		results = append(results, r)
	}

	return results, nil
}

// Load applies every saved configuration to its interface.
// The returned error is set only when the directory cannot be read; per interface failures are in the results.
func (s *Store) Load() ([]Result, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &sriov.Error{Kind: sriov.ErrUnreadable, Msg: "failed to read configuration directory", Err: err}
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		r := Result{Interface: name, Path: filepath.Join(s.dir, name)}

		data, err := os.ReadFile(r.Path)
		if err != nil {
			r.Err = &sriov.Error{Kind: sriov.ErrUnreadable, Msg: fmt.Sprintf("failed to read configuration file for interface %s", name), Err: err}
			results = append(results, r)
			continue
		}

		r.NumVFs = parseCount(r.Path, data)

		err = s.net.SetNumVFs(name, r.NumVFs)
		if err != nil {
			r.Err = &sriov.Error{Kind: sriov.ErrWrite, Msg: fmt.Sprintf("failed to apply configuration for interface %s", name), Err: err}
		} else {
			log.Log.Info("configuration applied", "interface", name, "vfs", r.NumVFs)
		}
		results = append(results, r)
	}

	return results, nil
}

// parseCount returns the number of VFs stored in a configuration file, 0 if it does not parse.
func parseCount(path string, data []byte) int {
	v, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil || v < 0 {
		log.Log.Warn("unparsable configuration, assuming 0", "path", path, "content", string(bytes.TrimSpace(data)))
		return 0
	}

	return v
}
