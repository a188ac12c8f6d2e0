package forms

import "strings"

type SearchForm struct {
	Text string `form:"text" validate:"max=255"`

	Field  string `form:"-"`
	Errors Errors `form:"-"`
}

func NewSearchForm(field, text string) *SearchForm {
	f := &SearchForm{Text: strings.TrimSpace(text), Field: field, Errors: Errors{}}
	check(f, f.Errors)
	return f
}

// Initial holds the values the form is pre-populated with.
func (f *SearchForm) Initial() map[string]string {
	return map[string]string{"text": f.Text}
}

func (f *SearchForm) Placeholder() string {
	return "Search by " + f.Field
}
