package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		data  any
		title string
		err   error
	)

	switch r.URL.Query().Get("dataType") {
	case "airports":
		title = "Flight store - Airports"
		data, err = webUI.FlightDB.Airports(ctx)
	case "counts":
		title = "Flight store - Table counts"
		data, err = webUI.FlightDB.TableCounts(ctx)
	case "feed":
		title = "Schedule feed"
		if webUI.Feed == nil {
			data = map[string]string{"source": "none configured"}
		} else {
			data = webUI.Feed.Status()
		}
	case "config":
		title = "Configuration"
		cfg := webUI.Config
		cfg.DBDSN = "(redacted)"
		data = cfg
	default:
		title = "Choose a data type"
		data = map[string]string{
			"error": "Please use one of the following: airports, counts, feed, config.",
		}
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeDebugData(w, title, data)
}
