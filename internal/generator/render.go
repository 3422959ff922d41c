package generator

import (
	"html/template"

	"github.com/goliatone/go-sitegen/internal/seo"
)

func (s *service) renderPostPage(view *PostView) ([]byte, error) {
	graph := seo.PageGraph(
		s.articleNode(view),
		seo.BreadcrumbSchema([]seo.Breadcrumb{
			{Name: "Blog", URL: s.assembler.URLs().BlogIndexURL()},
			{Name: view.Title, URL: view.CanonicalURL},
		}),
		seo.FAQSchema(view.FAQPairs),
	)
	return s.renderChrome("post", articleDataFrom(view), view, graph)
}

func (s *service) renderStudyPage(view *StudyView) ([]byte, error) {
	graph := seo.PageGraph(
		s.articleNode(&view.PostView),
		seo.BreadcrumbSchema([]seo.Breadcrumb{
			{Name: "Case Studies", URL: s.assembler.URLs().CaseStudyIndexURL()},
			{Name: view.Title, URL: view.CanonicalURL},
		}),
		seo.FAQSchema(view.FAQPairs),
	)
	data := studyData{
		articleData: articleDataFrom(&view.PostView),
		ClientName:  view.ClientName,
		Industry:    view.Industry,
		Results:     view.Results,
	}
	return s.renderChrome("study", data, &view.PostView, graph)
}

func (s *service) renderIndexPage(heading, canonical string, items []indexItem) ([]byte, error) {
	graph := seo.PageGraph(seo.BreadcrumbSchema([]seo.Breadcrumb{
		{Name: heading, URL: canonical},
	}))
	jsonld, err := seo.MarshalGraph(graph)
	if err != nil {
		return nil, err
	}
	main, err := s.templates.render("index", indexData{Heading: heading, Items: items})
	if err != nil {
		return nil, err
	}
	return s.templates.render("chrome", chromeData{
		SiteName:  s.cfg.Site.Name,
		MetaTitle: pageTitle(heading, s.cfg.Site.Name),
		Canonical: canonical,
		JSONLD:    template.HTML(jsonld),
		Main:      template.HTML(main),
	})
}

func (s *service) renderChrome(tmpl string, data any, view *PostView, graph map[string]any) ([]byte, error) {
	jsonld, err := seo.MarshalGraph(graph)
	if err != nil {
		return nil, err
	}
	main, err := s.templates.render(tmpl, data)
	if err != nil {
		return nil, err
	}
	return s.templates.render("chrome", chromeData{
		SiteName:        s.cfg.Site.Name,
		MetaTitle:       pageTitle(view.Meta.Title, s.cfg.Site.Name),
		MetaDescription: view.Meta.Description,
		Robots:          robotsContent(view.Meta),
		Canonical:       view.CanonicalURL,
		ShareImages:     view.Meta.ShareImages,
		JSONLD:          template.HTML(jsonld),
		Main:            template.HTML(main),
	})
}

func (s *service) articleNode(view *PostView) map[string]any {
	authorName := ""
	if view.Author != nil {
		authorName = view.Author.Name
	}
	return seo.ArticleSchema(seo.Article{
		Headline:      view.Title,
		Description:   view.Meta.Description,
		URL:           view.CanonicalURL,
		ImageURL:      view.FeaturedImage,
		DatePublished: view.PublishedISO,
		DateModified:  view.UpdatedISO,
		AuthorName:    authorName,
		SiteName:      s.cfg.Site.Name,
	})
}

func articleDataFrom(view *PostView) articleData {
	return articleData{
		Title:         view.Title,
		PublishedISO:  view.PublishedISO,
		PublishedDate: view.PublishedDate,
		FeaturedImage: view.FeaturedImage,
		Body:          template.HTML(view.BodyHTML),
		Author:        view.Author,
		AuthorBio:     template.HTML(view.AuthorBioHTML),
	}
}

func pageTitle(title, siteName string) string {
	switch {
	case title == "":
		return siteName
	case siteName == "":
		return title
	}
	return title + " | " + siteName
}
