package mime

import "github.com/indigo-web/utils/strcomp"

// extensions are tested in order, the first matching wins.
var extensions = []struct {
	ext string
	typ ContentType
}{
	{".htm", TypeHTML},
	{".html", TypeHTML},
	{".gif", TypeGIF},
	{".text", TypeText},
	{".txt", TypeText},
	{".jpeg", TypeJPEG},
	{".jpg", TypeJPEG},
	{".swf", TypeFlash},
	{".cgi", TypeCGI},
	{".json", TypeJSON},
	{".js", TypeJS},
	{".xml", TypeXML},
	{".css", TypeCSS},
	{".png", TypePNG},
	{".ico", TypeICO},
	{".ttf", TypeTTF},
	{".otf", TypeOTF},
	{".woff", TypeWOFF},
	{".eot", TypeEOT},
	{".svg", TypeSVG},
}

// Classify returns the category of a file by its name's extension. The extension is matched
// case-insensitively. Names with no known extension result in Unknown.
func Classify(filename string) ContentType {
	for _, e := range extensions {
		if len(filename) < len(e.ext) {
			continue
		}

		if strcomp.EqualFold(filename[len(filename)-len(e.ext):], e.ext) {
			return e.typ
		}
	}

	return Unknown
}
