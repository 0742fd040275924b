package models

// Client is a catalog record keyed by its CodeClient business code.
type Client struct {
	ID         string `bson:"id" json:"id"`
	CodeClient string `bson:"CodeClient" json:"CodeClient"`
	Intitule   string `bson:"Intitule" json:"Intitule"`
	Tel1       string `bson:"Tel1" json:"Tel1"`
	Tel2       string `bson:"Tel2" json:"Tel2"`
	Profession string `bson:"Profession" json:"Profession"`
	Societe    string `bson:"Societe" json:"Societe"`
	Mail       string `bson:"Mail,omitempty" json:"Mail,omitempty"`
	Adresse    string `bson:"Adresse" json:"Adresse"`
}

// ClientPage is one page of a paginated client listing.
type ClientPage struct {
	Clients     []Client `json:"clients"`
	Total       int64    `json:"total"`
	Pages       int64    `json:"pages"`
	CurrentPage int64    `json:"currentPage"`
}
