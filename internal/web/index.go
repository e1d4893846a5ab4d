package web

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// seriesFields returns the output names that can be graphed against the
// profile's series axis.
func (d *Dataset) seriesFields() []string {
	p := d.Profile
	if p.SeriesX == "" {
		return nil
	}
	var fields []string
	for _, f := range p.Fields {
		if f.OutputName() != p.SeriesX {
			fields = append(fields, f.OutputName())
		}
	}
	return fields
}

// indexPage renders the landing page: profile summary, document link, a
// datalist of every player for browser autocomplete and one graph per
// series field. static/graph.js fills the graphs from the series API.
func indexPage(d *Dataset) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := d.Profile
		players := d.Players("", 0)
		fields := d.seriesFields()

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<h1>%s</h1>
<p>%s</p>
<p>%d players, %d records. Full document: <a href="/%s">%s</a></p>
`,
			templ.EscapeString(p.Name),
			templ.EscapeString(p.Name),
			templ.EscapeString(p.Description),
			len(players), d.Grouped.Rows(),
			templ.EscapeString(url.PathEscape(d.Name)),
			templ.EscapeString(d.Name),
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<div id=\"add-players\">\n<input id=\"player-input\" list=\"player-list\" placeholder=\"Add players\">\n<datalist id=\"player-list\">\n"); err != nil {
			return err
		}
		for _, name := range players {
			if _, err := fmt.Fprintf(w, "<option value=\"%s\"></option>\n", templ.EscapeString(name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</datalist>\n<ul id=\"chosen-players\"></ul>\n"); err != nil {
			return err
		}

		if len(fields) == 0 {
			_, err := io.WriteString(w, "</div>\n</body>\n</html>\n")
			return err
		}

		if _, err := io.WriteString(w, "<button type=\"button\" id=\"create\">Graph</button>\n<button type=\"button\" id=\"remove-all\">Remove All Players</button>\n<p id=\"graph-status\"></p>\n</div>\n"); err != nil {
			return err
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "<div data-series=\"%s\"></div>\n", templ.EscapeString(f)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "<h2>API</h2>\n<ul>\n"); err != nil {
			return err
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "<li><code>/api/players/{name}/series/%s</code></li>\n", templ.EscapeString(f)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</ul>\n<script type=\"module\" src=\"/static/graph.js\"></script>\n</body>\n</html>\n")
		return err
	})
}
