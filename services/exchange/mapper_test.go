package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatSafe(t *testing.T) {
	assert.Equal(t, 12.5, parseFloatSafe("12.5"))
	assert.Equal(t, 12.5, parseFloatSafe("12,5"))
	assert.Equal(t, 1234.56, parseFloatSafe(" 1234,56 "))
	assert.Equal(t, 0.0, parseFloatSafe(""))
	assert.Equal(t, 0.0, parseFloatSafe("abc"))
	assert.Equal(t, 0.0, parseFloatSafe("12,34,56"))
}

func TestParseDateSafe(t *testing.T) {
	got := parseDateSafe("25/12/2023")
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 25, got.Day())

	// Absent or malformed dates default to now.
	before := time.Now()
	assert.False(t, parseDateSafe("").Before(before))
	assert.False(t, parseDateSafe("2023-12-25").Before(before))
	assert.False(t, parseDateSafe("32/13/2023").Before(before))
}

func TestMapArticleRow(t *testing.T) {
	row := map[string]string{
		"Code":            "ART001",
		"Code à Bar":      "6191234567890",
		"Désignation":     "Cahier 200 pages",
		"Stock":           "42",
		"Prix Achat HT":   "1,250",
		"MB%":             "30",
		"TVA":             "19",
		"PventeTTC":       "1,935",
		"Code Frs":        "FRS01",
		"Intitulé Frs":    "Papeterie Centrale",
		"Date Creation":   "01/02/2023",
		"Remise_Fidelite": "5",
		"Dernière PUHT":   "1,2",
	}

	a, ok := MapArticleRow(row)
	require.True(t, ok)

	assert.Equal(t, "ART001", a.Code)
	assert.Equal(t, "6191234567890", a.CodeBar)
	assert.Equal(t, "Cahier 200 pages", a.Designation)
	assert.Equal(t, 42.0, a.Stock)
	assert.Equal(t, 1.25, a.PrixAchatHT)
	assert.Equal(t, 30.0, a.MB)
	assert.Equal(t, 19.0, a.TVA)
	assert.Equal(t, 1.935, a.PventeTTC)
	assert.Equal(t, "Papeterie Centrale", a.IntituleFrs)
	assert.Equal(t, time.February, a.DateCreation.Month())
	assert.Equal(t, 5.0, a.RemiseFidelite)
	assert.Equal(t, 1.2, a.DernierePUHT)
	// Absent date cells default to now rather than zero.
	assert.False(t, a.DateModification.IsZero())
}

func TestMapArticleRowDroppedWithoutCodeBar(t *testing.T) {
	_, ok := MapArticleRow(map[string]string{
		"Code":        "ART001",
		"Désignation": "Orphan row",
	})
	assert.False(t, ok)
}

func TestMapClientRow(t *testing.T) {
	row := map[string]string{
		"Code Client": "CL042",
		"Intitulé":    "Mme Ben Salah",
		"Tél 1":       "71 123 456",
		"Tél 2":       "98 765 432",
		"Profession":  "Enseignante",
		"Société":     "Lycée El Menzah",
		"Mail":        "bensalah@example.tn",
		"Adresse":     "12 rue de Carthage, Tunis",
	}

	c, ok := MapClientRow(row)
	require.True(t, ok)

	assert.Equal(t, "CL042", c.CodeClient)
	assert.Equal(t, "Mme Ben Salah", c.Intitule)
	assert.Equal(t, "71 123 456", c.Tel1)
	assert.Equal(t, "98 765 432", c.Tel2)
	assert.Equal(t, "Lycée El Menzah", c.Societe)
	assert.Equal(t, "bensalah@example.tn", c.Mail)
}

func TestMapClientRowDroppedWithoutCode(t *testing.T) {
	_, ok := MapClientRow(map[string]string{"Intitulé": "No code"})
	assert.False(t, ok)
}

func TestHeaderOrderStable(t *testing.T) {
	headers := ArticleHeaders()
	require.Len(t, headers, 20)
	assert.Equal(t, "Code", headers[0])
	assert.Equal(t, "Code à Bar", headers[1])
	assert.Equal(t, "Dernière remise", headers[19])

	clientHeaders := ClientHeaders()
	require.Len(t, clientHeaders, 8)
	assert.Equal(t, "Code Client", clientHeaders[0])
	assert.Equal(t, "Adresse", clientHeaders[7])
}
