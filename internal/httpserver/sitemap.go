package httpserver

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"newswire/internal/domain"

	"github.com/gin-gonic/gin"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are the site pages that exist independent of content.
var staticPages = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "daily", "1.0"},
	{"/about", "monthly", "0.5"},
	{"/contact", "monthly", "0.5"},
}

// sitemap enumerates the static pages, every category and every published
// article from the same store the JSON API reads.
func (h *handlers) sitemap(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.deps.CategorySvc.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	published := true
	articles, err := h.deps.ArticleSvc.List(ctx, domain.ArticleFilter{Published: &published})
	if err != nil {
		h.fail(c, err)
		return
	}

	base := strings.TrimRight(h.deps.SiteURL, "/")
	set := sitemapURLSet{Xmlns: sitemapNamespace}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + p.path,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}
	for _, cat := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/category/" + cat.Slug,
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}
	for _, a := range articles {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/article/" + a.ID,
			LastMod:    a.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

func (h *handlers) robots(c *gin.Context) {
	base := strings.TrimRight(h.deps.SiteURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + base + "/sitemap.xml\n")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
