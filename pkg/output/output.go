package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"

	"github.com/openshift/net-sriov-tools/pkg/sriov/pf"
	"github.com/openshift/net-sriov-tools/pkg/sriov/vf"
)

// Format is the rendering used for listings.
type Format int

const (
	Table Format = iota
	JSON
)

var formatIdentifiers = map[Format][]string{
	Table: {"table"},
	JSON:  {"json"},
}

// NewFormatFlag returns a flag value storing the selected format into f.
func NewFormatFlag(f *Format) pflag.Value {
	return enumflag.New(f, "format", formatIdentifiers, enumflag.EnumCaseInsensitive)
}

// PFs renders SR-IOV capable interfaces.
func PFs(w io.Writer, f Format, pfs []pf.PF) error {
	if f == JSON {
		return writeJSON(w, pfs)
	}

	rows := make([][]string, 0, len(pfs))
	for _, p := range pfs {
		rows = append(rows, []string{p.Name, p.Addr, p.PCIeAddr, strconv.Itoa(p.TotalVFs), strconv.Itoa(p.NumVFs)})
	}
	writeTable(w, []string{"Name", "Addr", "PCIeAddr", "Max-VF", "Inuse-VF"}, rows)

	return nil
}

// VFs renders the VFs of an interface.
func VFs(w io.Writer, f Format, vfs []vf.VF) error {
	if f == JSON {
		return writeJSON(w, vfs)
	}

	rows := make([][]string, 0, len(vfs))
	for _, v := range vfs {
		rows = append(rows, []string{v.Name, v.Addr, v.PCIeAddr, v.Driver})
	}
	writeTable(w, []string{"Name", "Addr", "PCIeAddr", "Driver"}, rows)

	return nil
}

// writeJSON writes v as a single line. Callers pass non-nil slices so that empty lists render as [].
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}
