package favscan

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Format identifies a report rendering format.
type Format string

// Supported report formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Truncation limits for the summary formats. The JSON format always
// carries the full domain list, so the summary formats point there.
const (
	csvDomainLimit   = 3
	tableDomainLimit = 2
)

// HashGroup is the aggregation bucket of all domains sharing one favicon
// content hash. Domains appear in first-seen order.
type HashGroup struct {
	Hash    string   `json:"hash"`
	Count   int      `json:"count"`
	Domains []string `json:"domains"`
}

// Report holds the grouped scan results, ordered by descending count.
// Groups with equal counts keep the order in which their hashes were first
// seen.
type Report struct {
	Groups []HashGroup
}

// Format renders the report in the requested format.
func (r *Report) Format(f Format) (string, error) {
	switch f {
	case FormatJSON:
		return r.formatJSON()
	case FormatCSV:
		return r.formatCSV()
	case FormatTable:
		return r.formatTable(), nil
	default:
		return "", Errorf(EINVALID, "unknown output format %q", f)
	}
}

func (r *Report) formatJSON() (string, error) {
	groups := r.Groups
	if groups == nil {
		groups = []HashGroup{}
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Report) formatCSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Hash", "Count", "Domains"}); err != nil {
		return "", err
	}
	for _, g := range r.Groups {
		record := []string{g.Hash, strconv.Itoa(g.Count), truncateDomains(g.Domains, csvDomainLimit)}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (r *Report) formatTable() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "HASH\tCOUNT\tDOMAINS")
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%s\t%d\t%s\n", g.Hash, g.Count, truncateDomains(g.Domains, tableDomainLimit))
	}
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

// truncateDomains joins up to limit domains and summarizes the rest as a
// "+K more" suffix.
func truncateDomains(domains []string, limit int) string {
	if len(domains) <= limit {
		return strings.Join(domains, ", ")
	}
	return fmt.Sprintf("%s, +%d more (see json)", strings.Join(domains[:limit], ", "), len(domains)-limit)
}
