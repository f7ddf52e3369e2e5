// Package render draws the final artifact: a self-contained HTML
// page with a world map of every resolved endpoint. One marker per
// site, sized by transferred bytes and colored by request order,
// with an arc from the origin point to each.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/har"
)

type payloadSite struct {
	Host      string  `json:"host"`
	Addr      string  `json:"addr"`
	Bytes     int64   `json:"bytes"`
	Requests  int     `json:"requests"`
	Order     int     `json:"order"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type payload struct {
	Origin cartolib.GeoPoint `json:"origin"`
	Sites  []payloadSite     `json:"sites"`
}

type pageData struct {
	Title   string
	Payload template.JS
}

var pageTemplate = template.Must(template.New("map").Parse(mapTemplate))

// Render writes the map page for the given origin and sites.
func Render(w io.Writer, title string, origin cartolib.GeoPoint, sites []har.LocatedSite) error {
	data := payload{
		Origin: origin,
		Sites:  make([]payloadSite, 0, len(sites)),
	}

	for _, site := range sites {
		data.Sites = append(data.Sites, payloadSite{
			Host:      site.Host,
			Addr:      site.Addr,
			Bytes:     site.Bytes,
			Requests:  site.Requests,
			Order:     site.Order,
			Latitude:  site.Point.Latitude,
			Longitude: site.Point.Longitude,
		})
	}

	marshalled, err := json.Marshal(&data)
	if err != nil {
		return fmt.Errorf("cannot serialize map data: %w", err)
	}

	page := pageData{
		Title:   title,
		Payload: template.JS(marshalled), // nolint: gosec
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("cannot render a map: %w", err)
	}

	return nil
}
