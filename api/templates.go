package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"
	"os"
	"strconv"
)

//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"pageURL": pageURL,
	"idStr": func(id int64) string {
		return strconv.FormatInt(id, 10)
	},
}

// loadTemplates parses the embedded templates, or the ones under dir when it
// is set.
func loadTemplates(dir string) (*template.Template, error) {
	var src fs.FS
	if dir != "" {
		src = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			return nil, err
		}
		src = sub
	}

	return template.New("").Funcs(templateFuncs).ParseFS(src, "*.html", "taxi/*.html", "registration/*.html")
}

// pageURL links to another page of the same filtered list.
func pageURL(text string, page int) string {
	v := url.Values{}
	if text != "" {
		v.Set("text", text)
	}
	v.Set("page", strconv.Itoa(page))
	return "?" + v.Encode()
}
