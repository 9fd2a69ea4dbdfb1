// Package catalog is the static list of recommended portfolios per risk category.
package catalog

import "github.com/dmitrijs2005/investprofile/internal/client/models"

var portfolios = map[models.RiskCategory][]models.Portfolio{
	models.Conservative: {
		{Name: "Conservative Portfolio A", Assets: []string{"Treasury Selic bonds", "CDBs from large banks", "Fixed-income funds"}},
		{Name: "Conservative Portfolio B", Assets: []string{"Treasury Selic bonds", "Savings with monthly top-ups", "LCIs from mid-sized banks"}},
		{Name: "Conservative Portfolio C", Assets: []string{"CDBs from mid-sized banks", "Fixed-income funds", "Savings account"}},
	},
	models.Moderate: {
		{Name: "Moderate Portfolio A", Assets: []string{"Treasury IPCA+ bonds", "Multimarket funds", "Stable company stocks"}},
		{Name: "Moderate Portfolio B", Assets: []string{"LCI/LCA", "Treasury IPCA+ bonds", "Equity funds"}},
		{Name: "Moderate Portfolio C", Assets: []string{"Multimarket funds", "ETFs", "Blue-chip stocks"}},
	},
	models.Aggressive: {
		{Name: "Aggressive Portfolio A", Assets: []string{"Stocks", "ETFs", "Cryptocurrencies"}},
		{Name: "Aggressive Portfolio B", Assets: []string{"Equity funds", "Cryptocurrencies", "International investments"}},
		{Name: "Aggressive Portfolio C", Assets: []string{"International stocks", "Crypto assets", "Small caps"}},
	},
}

// Recommend returns the portfolios for category, in catalog order. The result
// is a deep copy. Unknown categories yield nil.
func Recommend(category models.RiskCategory) []models.Portfolio {
	src := portfolios[category]
	if src == nil {
		return nil
	}
	out := make([]models.Portfolio, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}
