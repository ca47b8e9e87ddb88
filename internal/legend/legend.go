// Package legend builds the depth legend shown in the map corner.
package legend

import (
	"bytes"
	"errors"
	"html/template"
	"strconv"
)

const PositionBottomRight = "bottomright"

type Entry struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

type Legend struct {
	Position string  `json:"position"`
	Entries  []Entry `json:"entries"`
}

var fragment = template.Must(template.New("legend").Parse(
	`<ul>{{range .}}<li style="background-color:{{.Color}}"></li> {{.Label}}{{if .Break}}<br>{{end}}{{end}}</ul>`,
))

type fragmentRow struct {
	Entry
	Break bool
}

// Build pairs colors[i] with the interval starting at intervals[i]. The last
// interval is open-ended.
func Build(colors []string, intervals []float64) (Legend, error) {
	if len(colors) == 0 {
		return Legend{}, errors.New("legend needs at least one interval")
	}
	if len(colors) != len(intervals) {
		return Legend{}, errors.New("legend colors and intervals differ in length")
	}

	entries := make([]Entry, 0, len(intervals))
	for i := range intervals {
		entries = append(entries, Entry{
			Color: colors[i],
			Label: Label(intervals, i),
		})
	}

	return Legend{
		Position: PositionBottomRight,
		Entries:  entries,
	}, nil
}

// Label returns "lower – upper" for bounded intervals and "lower+" for the last.
func Label(intervals []float64, i int) string {
	lower := formatBound(intervals[i])
	if i+1 < len(intervals) {
		return lower + " – " + formatBound(intervals[i+1])
	}
	return lower + "+"
}

// HTML renders the legend body as a list of colored swatches.
func (l Legend) HTML() (template.HTML, error) {
	rows := make([]fragmentRow, len(l.Entries))
	for i, e := range l.Entries {
		rows[i] = fragmentRow{Entry: e, Break: i < len(l.Entries)-1}
	}

	var buf bytes.Buffer
	if err := fragment.Execute(&buf, rows); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
