package exchange

import (
	"strconv"
	"strings"
	"time"

	"github.com/pwnz15/backend-sld/models"
)

// The field tables below are the bidirectional mapping between external
// (localized) CSV headers and canonical record fields. Import walks the table
// forward with typed coercion; export walks it backward, one designated
// header per field, in table order.

// parseFloatSafe parses a numeric cell, treating comma as the decimal
// separator. Empty or unparseable values coerce to 0.
func parseFloatSafe(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDateSafe parses a DD/MM/YYYY cell, defaulting to the current instant
// when absent or unparseable.
func parseDateSafe(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now()
	}
	t, err := time.ParseInLocation("02/01/2006", raw, time.Local)
	if err != nil {
		return time.Now()
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// articleField binds one external header to one canonical Article field.
type articleField struct {
	header string
	parse  func(raw string, a *models.Article)
	format func(a *models.Article) string
}

var articleTable = []articleField{
	{"Code",
		func(raw string, a *models.Article) { a.Code = raw },
		func(a *models.Article) string { return a.Code }},
	{"Code à Bar",
		func(raw string, a *models.Article) { a.CodeBar = raw },
		func(a *models.Article) string { return a.CodeBar }},
	{"Désignation",
		func(raw string, a *models.Article) { a.Designation = raw },
		func(a *models.Article) string { return a.Designation }},
	{"Stock",
		func(raw string, a *models.Article) { a.Stock = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.Stock) }},
	{"Famille",
		func(raw string, a *models.Article) { a.Famille = raw },
		func(a *models.Article) string { return a.Famille }},
	{"Marque",
		func(raw string, a *models.Article) { a.Marque = raw },
		func(a *models.Article) string { return a.Marque }},
	{"Prix Achat HT",
		func(raw string, a *models.Article) { a.PrixAchatHT = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.PrixAchatHT) }},
	{"MB%",
		func(raw string, a *models.Article) { a.MB = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.MB) }},
	{"TVA",
		func(raw string, a *models.Article) { a.TVA = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.TVA) }},
	{"PventeTTC",
		func(raw string, a *models.Article) { a.PventeTTC = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.PventeTTC) }},
	{"Pvente Pub HT",
		func(raw string, a *models.Article) { a.PventePubHT = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.PventePubHT) }},
	{"Code Frs",
		func(raw string, a *models.Article) { a.CodeFrs = raw },
		func(a *models.Article) string { return a.CodeFrs }},
	{"Intitulé Frs",
		func(raw string, a *models.Article) { a.IntituleFrs = raw },
		func(a *models.Article) string { return a.IntituleFrs }},
	{"Date Creation",
		func(raw string, a *models.Article) { a.DateCreation = parseDateSafe(raw) },
		func(a *models.Article) string { return formatDate(a.DateCreation) }},
	{"Date Modification",
		func(raw string, a *models.Article) { a.DateModification = parseDateSafe(raw) },
		func(a *models.Article) string { return formatDate(a.DateModification) }},
	{"Ecrivain",
		func(raw string, a *models.Article) { a.Ecrivain = raw },
		func(a *models.Article) string { return a.Ecrivain }},
	{"Collection",
		func(raw string, a *models.Article) { a.Collection = raw },
		func(a *models.Article) string { return a.Collection }},
	{"Remise_Fidelite",
		func(raw string, a *models.Article) { a.RemiseFidelite = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.RemiseFidelite) }},
	{"Dernière PUHT",
		func(raw string, a *models.Article) { a.DernierePUHT = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.DernierePUHT) }},
	{"Dernière remise",
		func(raw string, a *models.Article) { a.DerniereRemise = parseFloatSafe(raw) },
		func(a *models.Article) string { return formatFloat(a.DerniereRemise) }},
}

// clientField binds one external header to one canonical Client field.
type clientField struct {
	header string
	parse  func(raw string, c *models.Client)
	format func(c *models.Client) string
}

var clientTable = []clientField{
	{"Code Client",
		func(raw string, c *models.Client) { c.CodeClient = raw },
		func(c *models.Client) string { return c.CodeClient }},
	{"Intitulé",
		func(raw string, c *models.Client) { c.Intitule = raw },
		func(c *models.Client) string { return c.Intitule }},
	{"Tél 1",
		func(raw string, c *models.Client) { c.Tel1 = raw },
		func(c *models.Client) string { return c.Tel1 }},
	{"Tél 2",
		func(raw string, c *models.Client) { c.Tel2 = raw },
		func(c *models.Client) string { return c.Tel2 }},
	{"Profession",
		func(raw string, c *models.Client) { c.Profession = raw },
		func(c *models.Client) string { return c.Profession }},
	{"Société",
		func(raw string, c *models.Client) { c.Societe = raw },
		func(c *models.Client) string { return c.Societe }},
	{"Mail",
		func(raw string, c *models.Client) { c.Mail = raw },
		func(c *models.Client) string { return c.Mail }},
	{"Adresse",
		func(raw string, c *models.Client) { c.Adresse = raw },
		func(c *models.Client) string { return c.Adresse }},
}

// ArticleHeaders returns the external header row in its fixed order.
func ArticleHeaders() []string {
	headers := make([]string, len(articleTable))
	for i, f := range articleTable {
		headers[i] = f.header
	}
	return headers
}

// ClientHeaders returns the external header row in its fixed order.
func ClientHeaders() []string {
	headers := make([]string, len(clientTable))
	for i, f := range clientTable {
		headers[i] = f.header
	}
	return headers
}

// MapArticleRow coerces one CSV row into a canonical article. Rows missing
// the CodeBar business code are dropped: ok is false and the row counts
// toward neither success nor failure.
func MapArticleRow(row map[string]string) (models.Article, bool) {
	var a models.Article
	for _, f := range articleTable {
		f.parse(strings.TrimSpace(row[f.header]), &a)
	}
	if a.CodeBar == "" {
		return models.Article{}, false
	}
	return a, true
}

// MapClientRow coerces one CSV row into a canonical client. Rows missing the
// CodeClient business code are dropped.
func MapClientRow(row map[string]string) (models.Client, bool) {
	var c models.Client
	for _, f := range clientTable {
		f.parse(strings.TrimSpace(row[f.header]), &c)
	}
	if c.CodeClient == "" {
		return models.Client{}, false
	}
	return c, true
}

// ArticleRecord projects a stored article back onto the external header
// order; missing values render as empty strings.
func ArticleRecord(a *models.Article) []string {
	record := make([]string, len(articleTable))
	for i, f := range articleTable {
		record[i] = f.format(a)
	}
	return record
}

// ClientRecord projects a stored client back onto the external header order.
func ClientRecord(c *models.Client) []string {
	record := make([]string, len(clientTable))
	for i, f := range clientTable {
		record[i] = f.format(c)
	}
	return record
}
