// Package tablefile reads and writes the draw table as text.
//
// The file holds one line per target, in ascending target order starting at
// drawtable.MinTarget, each a list of (length, weighted total) pairs:
//
//	[(1, 4), (2, 44), (3, 144), (4, 24), (5, 0), (6, 0), (7, 0)]
package tablefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultName is the file name the commands write to.
const DefaultName = "combinations.txt"

// Write writes rows in table file format.
func Write(w io.Writer, rows []drawtable.Row) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		bw.WriteByte('[')
		for i, lt := range r.Totals {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "(%d, %d)", lt.Length, lt.WeightedTotal)
		}
		bw.WriteString("]\n")
	}
	return bw.Flush()
}

// Read parses a table file. Line i holds the row of target MinTarget+i.
func Read(r io.Reader) ([]drawtable.Row, error) {
	var rows []drawtable.Row
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.Target = drawtable.MinTarget + len(rows)
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return rows, nil
}

func parseRow(text string) (drawtable.Row, error) {
	var row drawtable.Row
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return row, fmt.Errorf("malformed row %q", text)
	}
	body := strings.TrimSpace(text[1 : len(text)-1])
	if body == "" {
		return row, nil
	}
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return row, fmt.Errorf("malformed row %q", text)
	}
	for _, pair := range strings.Split(body[1:len(body)-1], "), (") {
		fields := strings.Split(pair, ",")
		if len(fields) != 2 {
			return row, fmt.Errorf("malformed pair %q", pair)
		}
		length, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return row, fmt.Errorf("length %q: %w", fields[0], err)
		}
		total, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return row, fmt.Errorf("total %q: %w", fields[1], err)
		}
		row.Totals = append(row.Totals, drawtable.LengthTotal{Length: length, WeightedTotal: total})
	}
	return row, nil
}

// WriteReport writes rows as an aligned table with numbers formatted for tag.
func WriteReport(w io.Writer, rows []drawtable.Row, tag language.Tag) error {
	p := message.NewPrinter(tag)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "target\t")
	if len(rows) > 0 {
		for _, lt := range rows[0].Totals {
			fmt.Fprintf(tw, "%d cards\t", lt.Length)
		}
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t", r.Target)
		for _, lt := range r.Totals {
			p.Fprintf(tw, "%d\t", lt.WeightedTotal)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
