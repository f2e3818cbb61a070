package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrNoShareURL is returned when neither the site nor the article has a URL
// to pass on.
var ErrNoShareURL = errors.New("article has no URL to share")

// ShareLinks are the ready-made links for passing an article on.
type ShareLinks struct {
	// URL is the plain link, the one copied to the clipboard.
	URL      string `json:"url"`
	WhatsApp string `json:"whatsapp"`
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
}

// NewShareLinks points at the article's anchor on the site's front page,
// #noticia-<id>. Without a site URL the article's own link is shared.
func NewShareLinks(article Article, siteURL string) (ShareLinks, error) {
	link, err := shareURL(article, siteURL)
	if err != nil {
		return ShareLinks{}, err
	}

	return ShareLinks{
		URL:      link,
		WhatsApp: "https://wa.me/?" + url.Values{"text": {article.Title + " " + link}}.Encode(),
		Facebook: "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {link}}.Encode(),
		Twitter:  "https://twitter.com/intent/tweet?" + url.Values{"text": {article.Title}, "url": {link}}.Encode(),
	}, nil
}

func shareURL(article Article, siteURL string) (string, error) {
	if siteURL == "" {
		if article.Link == "" {
			return "", ErrNoShareURL
		}
		return article.Link, nil
	}

	u, err := url.Parse(siteURL)
	if err != nil {
		return "", fmt.Errorf("parsing site URL: %w", err)
	}
	u.Fragment = "noticia-" + article.ID
	u.RawFragment = ""
	return u.String(), nil
}
