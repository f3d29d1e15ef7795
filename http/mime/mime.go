package mime

type MIME = string

const (
	HTML       MIME = "text/html"
	GIF        MIME = "image/gif"
	Plain      MIME = "text/plain"
	JPEG       MIME = "image/jpeg"
	Flash      MIME = "application/x-shockwave-flash"
	XML        MIME = "text/xml"
	CSS        MIME = "text/css"
	JSON       MIME = "application/json"
	JavaScript MIME = "application/javascript"
	PNG        MIME = "image/png"
	ICO        MIME = "image/x-icon"
	TTF        MIME = "application/x-font-truetype"
	OTF        MIME = "application/x-font-opentype"
	WOFF       MIME = "application/font-woff"
	EOT        MIME = "application/vnd.ms-fontobject"
	SVG        MIME = "image/svg+xml"
)

// ContentType is a closed enumeration of the resource categories a response head can be
// built for.
type ContentType uint8

const (
	Unknown ContentType = iota
	TypeHTML
	TypeGIF
	TypeText
	TypeJPEG
	TypeFlash
	TypeXML
	TypeCSS
	TypeJSON
	TypeJS
	TypeCGI
	TypePNG
	TypeICO
	TypeTTF
	TypeOTF
	TypeWOFF
	TypeEOT
	TypeSVG
)

var contentTypes = [...]struct {
	name string
	mime MIME
}{
	Unknown:   {"unknown", ""},
	TypeHTML:  {"html", HTML},
	TypeGIF:   {"gif", GIF},
	TypeText:  {"text", Plain},
	TypeJPEG:  {"jpeg", JPEG},
	TypeFlash: {"flash", Flash},
	TypeXML:   {"xml", XML},
	TypeCSS:   {"css", CSS},
	TypeJSON:  {"json", JSON},
	TypeJS:    {"js", JavaScript},
	// CGI output is always served as a html page
	TypeCGI:  {"cgi", HTML},
	TypePNG:  {"png", PNG},
	TypeICO:  {"ico", ICO},
	TypeTTF:  {"ttf", TTF},
	TypeOTF:  {"otf", OTF},
	TypeWOFF: {"woff", WOFF},
	TypeEOT:  {"eot", EOT},
	TypeSVG:  {"svg", SVG},
}

// Types lists every known category, Unknown excluded.
var Types = []ContentType{
	TypeHTML, TypeGIF, TypeText, TypeJPEG, TypeFlash, TypeXML, TypeCSS, TypeJSON, TypeJS,
	TypeCGI, TypePNG, TypeICO, TypeTTF, TypeOTF, TypeWOFF, TypeEOT, TypeSVG,
}

func (c ContentType) String() string {
	if int(c) >= len(contentTypes) {
		return contentTypes[Unknown].name
	}

	return contentTypes[c].name
}

// MIME returns the value of the Content-Type header for the category. Empty string is
// returned for Unknown.
func (c ContentType) MIME() MIME {
	if int(c) >= len(contentTypes) {
		return ""
	}

	return contentTypes[c].mime
}

// Known tells whether the category isn't Unknown.
func (c ContentType) Known() bool {
	return c != Unknown && int(c) < len(contentTypes)
}
