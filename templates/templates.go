package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var files embed.FS

var (
	emailTemplate = template.Must(template.ParseFS(files, "boarding_pass_email.html"))
	adminTemplate = template.Must(template.ParseFS(files, "admin.html"))
)

// BoardingPassEmail is the data rendered into the boarding pass email
type BoardingPassEmail struct {
	PassengerName string
	Route         string
	PassID        string
	FlightNumber  string
	Seat          string
	QR            string
	// Barcode is a data: URI, which html/template only accepts as template.URL
	Barcode template.URL
	Year    int
}

// RenderBoardingPassEmail renders the HTML body of a boarding pass email
func RenderBoardingPassEmail(data BoardingPassEmail) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.ExecuteTemplate(&buf, "boarding_pass_email.html", data); err != nil {
		return "", fmt.Errorf("failed to render boarding pass email: %w", err)
	}
	return buf.String(), nil
}

// Admin returns the template set for the admin listing page
func Admin() *template.Template {
	return adminTemplate
}

// Page returns an embedded static page such as "index.html"
func Page(name string) ([]byte, error) {
	return files.ReadFile(name)
}
