package quake

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/mr1hm/go-quake-map/internal/models"
)

// PopupTimeLayout mimics a browser's default Date rendering.
const PopupTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

var popupTemplate = template.Must(template.New("popup").Parse(
	`<h3>{{.Place}}</h3><hr><p>{{.Time}}</p><hr><p>Magnitude: {{.Magnitude}}</p><hr><p>Depth: {{.Depth}}</p>`,
))

type popupView struct {
	Place     string
	Time      string
	Magnitude string
	Depth     string
}

// Popup renders the marker popup for q, showing the event time in loc.
func Popup(q models.Earthquake, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	when := "unknown time"
	if !q.Time.IsZero() {
		when = q.Time.In(loc).Format(PopupTimeLayout)
	}

	var buf bytes.Buffer
	err := popupTemplate.Execute(&buf, popupView{
		Place:     q.Place,
		Time:      when,
		Magnitude: formatNumber(q.Magnitude),
		Depth:     formatNumber(q.Depth),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
