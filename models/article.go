package models

import "time"

// Article is a catalog record keyed by its CodeBar business code. Field names
// are domain vocabulary carried over from the trading system (HT = tax
// exclusive, TTC = tax inclusive, TVA = VAT rate).
type Article struct {
	ID               string    `bson:"id" json:"id"`
	Code             string    `bson:"Code" json:"Code"`
	CodeBar          string    `bson:"CodeBar" json:"CodeBar"`
	Designation      string    `bson:"Designation" json:"Designation"`
	Stock            float64   `bson:"Stock" json:"Stock"`
	Famille          string    `bson:"Famille" json:"Famille"`
	Marque           string    `bson:"Marque" json:"Marque"`
	PrixAchatHT      float64   `bson:"PrixAchatHT" json:"PrixAchatHT"`
	MB               float64   `bson:"MB" json:"MB"`
	TVA              float64   `bson:"TVA" json:"TVA"`
	PventeTTC        float64   `bson:"PventeTTC" json:"PventeTTC"`
	PventePubHT      float64   `bson:"PventePubHT" json:"PventePubHT"`
	CodeFrs          string    `bson:"CodeFrs" json:"CodeFrs"`
	IntituleFrs      string    `bson:"IntituleFrs" json:"IntituleFrs"`
	DateCreation     time.Time `bson:"DateCreation" json:"DateCreation"`
	DateModification time.Time `bson:"DateModification" json:"DateModification"`
	Ecrivain         string    `bson:"Ecrivain" json:"Ecrivain"`
	Collection       string    `bson:"Collection" json:"Collection"`
	RemiseFidelite   float64   `bson:"RemiseFidelite" json:"RemiseFidelite"`
	DernierePUHT     float64   `bson:"DernierePUHT" json:"DernierePUHT"`
	DerniereRemise   float64   `bson:"DerniereRemise" json:"DerniereRemise"`
}

// ArticlePage is one page of a paginated article listing.
type ArticlePage struct {
	Articles    []Article `json:"articles"`
	Total       int64     `json:"total"`
	Pages       int64     `json:"pages"`
	CurrentPage int64     `json:"currentPage"`
}
