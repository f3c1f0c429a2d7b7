package events

import (
	"fmt"
	"html/template"
	"time"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"shortDate": func(t time.Time) string {
			return t.Format("Mon, Jan 2, 2006")
		},
		"longDate": func(t time.Time) string {
			return t.Format("Monday, January 2, 2006")
		},
		"clock": func(t time.Time) string {
			return t.Format("3:04 PM")
		},
		"since": func(t time.Time) string {
			return fmt.Sprintf("%dms", time.Since(t).Milliseconds())
		},
	}
}
