package notifications

import "strings"

// TemplateData feeds the message template placeholders.
type TemplateData struct {
	ClientName       string
	ProfessionalName string
	DisplayDate      string
	Time             string
}

// RenderTemplate substitutes the first occurrence of each placeholder.
// Later duplicates of a token are left untouched, so a template author
// can show the literal token if they want.
func RenderTemplate(template string, data TemplateData) string {
	msg := template
	msg = strings.Replace(msg, "{cliente}", data.ClientName, 1)
	msg = strings.Replace(msg, "{profissional}", data.ProfessionalName, 1)
	msg = strings.Replace(msg, "{data}", data.DisplayDate, 1)
	msg = strings.Replace(msg, "{hora}", data.Time, 1)
	return msg
}
