package domain

// Tier identifies one of the places a set can be persisted.
type Tier string

const (
	TierServer Tier = "server"
	TierCookie Tier = "cookie"
	TierLocal  Tier = "local"
)

// Storage keys shared by the cookie and local tiers.
const (
	PreferencesKey    = "categorias_preferidas"
	SavedArticlesKey  = "noticiasSalvas"
	SearchHistoryKey  = "historicoBusca"
	ReadingVersionKey = "jc_versao_noticia"
)

// StorageRecord is one tier's serialised copy of a set.
type StorageRecord struct {
	Tier  Tier   `json:"tier"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
