package domain

import (
	"time"
)

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	Author      string    `json:"author,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type FeedEntry struct {
	Article Article `json:"article"`
	Saved   bool    `json:"saved"`
}

type FeedPage struct {
	Entries []FeedEntry `json:"entries"`
	Page    int         `json:"page"`
	HasMore bool        `json:"has_more"`
	Total   int         `json:"total"`
}

type ArticleListOptions struct {
	Page, PageSize int
}

type ArticleOrdering string

const (
	ArticleOrderingNone      ArticleOrdering = ""
	ArticleOrderingRecent    ArticleOrdering = "recentes"
	ArticleOrderingRelevance ArticleOrdering = "relevancia"
)

var ValidOrderings = []ArticleOrdering{
	ArticleOrderingNone,
	ArticleOrderingRecent,
	ArticleOrderingRelevance,
}

// DateWindow restricts search results to recently published articles.
type DateWindow string

const (
	DateWindowAny   DateWindow = ""
	DateWindowToday DateWindow = "hoje"
	DateWindowWeek  DateWindow = "semana"
	DateWindowMonth DateWindow = "mes"
)

var ValidDateWindows = []DateWindow{
	DateWindowAny,
	DateWindowToday,
	DateWindowWeek,
	DateWindowMonth,
}

// Duration returns how far back the window reaches; zero means unbounded.
func (w DateWindow) Duration() time.Duration {
	switch w {
	case DateWindowToday:
		return 24 * time.Hour
	case DateWindowWeek:
		return 7 * 24 * time.Hour
	case DateWindowMonth:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// ReadingVersion is the article length the reader prefers.
type ReadingVersion string

const (
	ReadingVersionShort ReadingVersion = "curta"
	ReadingVersionFull  ReadingVersion = "completa"
)
