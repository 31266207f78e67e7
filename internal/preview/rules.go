package preview

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textAttr selects an element's text content instead of an attribute.
const textAttr = ""

type rule struct {
	Selector string
	Attr     string
}

// ruleSet is evaluated in order; the first non-empty value wins.
type ruleSet []rule

var (
	titleRules = ruleSet{
		{Selector: `meta[property="og:title"]`, Attr: "content"},
		{Selector: `meta[name="twitter:title"]`, Attr: "content"},
		{Selector: "title", Attr: "text"},
		{Selector: "title", Attr: textAttr},
	}

	descriptionRules = ruleSet{
		{Selector: `meta[property="og:description"]`, Attr: "content"},
		{Selector: `meta[name="description"]`, Attr: "content"},
		{Selector: `meta[name="twitter:description"]`, Attr: "content"},
	}

	imageRules = ruleSet{
		{Selector: `meta[property="og:image:secure_url"]`, Attr: "content"},
		{Selector: `meta[property="og:image:url"]`, Attr: "content"},
		{Selector: `meta[property="og:image"]`, Attr: "content"},
		{Selector: `meta[name="twitter:image:src"]`, Attr: "content"},
		{Selector: `meta[name="twitter:image"]`, Attr: "content"},
	}

	siteNameRules = ruleSet{
		{Selector: `meta[property="og:site_name"]`, Attr: "content"},
	}
)

func (rs ruleSet) pick(doc *goquery.Document) string {
	for _, r := range rs {
		if v := r.eval(doc); v != "" {
			return v
		}
	}
	return ""
}

func (r rule) eval(doc *goquery.Document) string {
	sel := doc.Find(r.Selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if r.Attr == textAttr {
		return strings.TrimSpace(sel.Text())
	}
	v, _ := sel.Attr(r.Attr)
	return v
}
