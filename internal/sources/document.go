package sources

import (
	"io"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// ChooserSectionID is the id of the section holding the option controls
const ChooserSectionID = "chooser"

// LoadDocument reads the options document at path
func LoadDocument(path string) ([]catalog.RawControl, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("options document %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	controls, err := ParseDocument(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	return controls, nil
}

// ParseDocument returns every input control inside the chooser section in
// document order. Attribute names are lower-cased by the HTML parser.
func ParseDocument(r io.Reader) ([]catalog.RawControl, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse options document")
	}

	section := findChooser(doc)
	if section == nil {
		return nil, errors.NotFound("no chooser section found in options document")
	}

	var controls []catalog.RawControl
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input {
			attrs := make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}
			controls = append(controls, catalog.RawControl{Attrs: attrs})
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(section)

	return controls, nil
}

func findChooser(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Section && attr(n, "id") == ChooserSectionID {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findChooser(child); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
