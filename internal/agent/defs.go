// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import "github.com/finro/content-engine/pkg/types"

// builtins are the four production agents. Source order matters: sources are
// fetched in declared order, and taxonomy order breaks classification ties.
var builtins = []types.AgentDefinition{
	{
		Name:     "finante",
		Category: "finante",
		Sources: []types.FeedSource{
			{ID: "bnr", Name: "Banca Națională a României", Type: types.SourceRSS, URL: "https://www.bnr.ro/RSS_200.aspx"},
			{ID: "zf", Name: "Ziarul Financiar", Type: types.SourceRSS, URL: "https://www.zf.ro/rss"},
			{ID: "profit", Name: "Profit.ro", Type: types.SourceRSS, URL: "https://www.profit.ro/rss"},
			{ID: "wall_street", Name: "Wall-Street.ro", Type: types.SourceRSS, URL: "https://www.wall-street.ro/rss/economie.xml"},
		},
		Taxonomy: types.Taxonomy{
			{Label: "credite", Keywords: []string{"credit", "credite", "ipotecar", "imobiliar", "dobândă", "IRCC", "ROBOR", "împrumut", "bancă", "refinanțare", "prima casă", "noua casă"}},
			{Label: "economisire", Keywords: []string{"economii", "economisire", "depozit", "cont economii", "buget", "cheltuieli"}},
			{Label: "investitii", Keywords: []string{"investiți", "acțiuni", "obligațiuni", "ETF", "bursă", "BVB", "portofoliu", "dividend", "titluri de stat", "fond de investiții"}},
			{Label: "taxe", Keywords: []string{"taxe", "impozit", "ANAF", "declarația unică", "CAS", "CASS", "TVA", "fiscal", "PFA", "SRL"}},
			{Label: "pensii", Keywords: []string{"pensie", "pilonul", "fond de pensii", "CNPP", "punct de pensie", "vârstă de pensionare"}},
		},
		BaseKeywords: []string{"finanțe personale", "România", "2026"},
		MaxArticles:  5,
		ContentCap:   2000,
	},
	{
		Name:     "asigurari",
		Category: "asigurari",
		Sources: []types.FeedSource{
			{ID: "asf", Name: "ASF - Autoritatea de Supraveghere Financiară", Type: types.SourceScrape, URL: "https://asfromania.ro/ro/a/1/informatii-publice/comunicate", Selector: ".view-content .views-row"},
			{ID: "1asig", Name: "1asig.ro", Type: types.SourceRSS, URL: "https://www.1asig.ro/rss/", MaxEntries: 15},
			{ID: "xprimm", Name: "XPRIMM", Type: types.SourceScrape, URL: "https://www.xprimm.com/Romania/", Selector: ".news-list .news-item"},
			{ID: "zf_asig", Name: "Ziarul Financiar - Asigurări", Type: types.SourceRSS, URL: "https://www.zf.ro/rss", MaxEntries: 15, FilterKeywords: []string{"asigur", "RCA", "CASCO", "poliț"}},
		},
		Taxonomy: types.Taxonomy{
			{Label: "rca", Keywords: []string{"RCA", "asigurare auto", "obligatorie auto", "daune auto", "poliță auto", "asigurător auto", "despăgubire auto", "BAAR"}},
			{Label: "casco", Keywords: []string{"CASCO", "miniCASCO", "asigurare facultativă", "avarie", "furt auto", "decontare directă"}},
			{Label: "sanatate", Keywords: []string{"asigurare sănătate", "medical", "asigurare privată sănătate", "spitalizare", "diagnostic"}},
			{Label: "calatorie", Keywords: []string{"asigurare călătorie", "travel", "asistență rutieră", "carte verde", "asigurare vacanță"}},
			{Label: "locuinta", Keywords: []string{"asigurare locuință", "PAD", "PAID", "inundații", "cutremur", "asigurare casă"}},
		},
		BaseKeywords: []string{"asigurări", "România", "2026"},
		MaxArticles:  5,
		ContentCap:   2000,
	},
	{
		Name:     "tech",
		Category: "tech",
		Sources: []types.FeedSource{
			{ID: "arenait", Name: "ArenaIT.ro", Type: types.SourceRSS, URL: "https://arenait.ro/feed/", MaxEntries: 15},
			{ID: "go4it", Name: "Go4IT.ro", Type: types.SourceRSS, URL: "https://www.go4it.ro/feed/", MaxEntries: 15},
			{ID: "playtech", Name: "Playtech.ro", Type: types.SourceRSS, URL: "https://playtech.ro/feed/", MaxEntries: 15},
			{ID: "techradar", Name: "TechRadar", Type: types.SourceRSS, URL: "https://www.techradar.com/rss", MaxEntries: 15, FilterKeywords: []string{"review", "best", "vs", "comparison"}},
			{ID: "theverge", Name: "The Verge", Type: types.SourceRSS, URL: "https://www.theverge.com/rss/reviews/index.xml", MaxEntries: 15},
		},
		Taxonomy: types.Taxonomy{
			{Label: "telefoane", Keywords: []string{"telefon", "smartphone", "Samsung", "iPhone", "Pixel", "OnePlus", "Xiaomi", "Galaxy", "Motorola", "Nothing Phone", "POCO"}},
			{Label: "laptopuri", Keywords: []string{"laptop", "notebook", "MacBook", "ThinkPad", "Dell XPS", "ASUS", "Lenovo", "HP Pavilion", "ultrabook", "Chromebook"}},
			{Label: "software", Keywords: []string{"aplicație", "app", "software", "VPN", "antivirus", "Windows", "macOS", "Linux", "browser", "Chrome", "Firefox"}},
			{Label: "ai", Keywords: []string{"AI", "inteligență artificială", "ChatGPT", "Claude", "Gemini", "Copilot", "machine learning", "neural", "LLM", "GPT"}},
			{Label: "accesorii", Keywords: []string{"căști", "headphones", "earbuds", "smartwatch", "ceas inteligent", "tabletă", "monitor", "tastatură", "mouse"}},
		},
		BaseKeywords:  []string{"tehnologie", "recenzie", "2026"},
		MaxArticles:   5,
		ContentCap:    2500,
		ExtractRating: true,
	},
	{
		Name:     "investitii",
		Category: "investitii",
		Sources: []types.FeedSource{
			{ID: "reuters_biz", Name: "Reuters Business", Type: types.SourceRSS, URL: "https://www.reutersagency.com/feed/?taxonomy=best-sectors&post_type=best", MaxEntries: 20},
			{ID: "ft_markets", Name: "Financial Times Markets", Type: types.SourceRSS, URL: "https://www.ft.com/rss/markets", MaxEntries: 20},
			{ID: "investing_ro", Name: "Investing.com Romania", Type: types.SourceRSS, URL: "https://ro.investing.com/rss/news.rss", MaxEntries: 20},
			{ID: "bvb_news", Name: "BVB News", Type: types.SourceScrape, URL: "https://bvb.ro/FinancialInstruments/SelectedData/NewsItem", Selector: ".news-list .news-item, .dataTable tr"},
			{ID: "romania_insider_biz", Name: "Romania Insider Business", Type: types.SourceRSS, URL: "https://www.romania-insider.com/feed", MaxEntries: 20, FilterKeywords: []string{"ETF", "BVB", "investit", "actiuni", "fond", "bursa", "stock", "bond", "obligatiuni"}},
			{ID: "zf_burse", Name: "Ziarul Financiar - Burse", Type: types.SourceRSS, URL: "https://www.zf.ro/rss", MaxEntries: 20, FilterKeywords: []string{"BVB", "ETF", "bursa", "actiuni", "investit", "fond", "BET"}},
			{ID: "ri_realestate", Name: "Romania Insider Real Estate", Type: types.SourceRSS, URL: "https://www.romania-insider.com/feed", MaxEntries: 20, FilterKeywords: []string{"real estate", "imobiliar", "apartament", "rezidential", "dezvoltator", "proiect", "constructi", "Coresi", "AFI", "One United", "IULIUS", "Speedwell"}},
			{ID: "business_review", Name: "Business Review Property", Type: types.SourceRSS, URL: "https://business-review.eu/feed", MaxEntries: 20, FilterKeywords: []string{"property", "real estate", "residential", "office", "logistics", "developer", "imobiliar", "Cluj", "Brasov", "Timisoara", "Bucuresti"}},
			{ID: "ri_corporate", Name: "Romania Insider Corporate", Type: types.SourceRSS, URL: "https://www.romania-insider.com/feed", MaxEntries: 20, FilterKeywords: []string{"investit", "fabrica", "factory", "milioane euro", "million", "FDI", "corporat", "Knauf", "Continental", "Stada", "Bosch", "Mercedes", "Ford"}},
			{ID: "profit_invest", Name: "Profit.ro Investitii", Type: types.SourceRSS, URL: "https://www.profit.ro/rss", MaxEntries: 20, FilterKeywords: []string{"investit", "fabrica", "proiect", "milioane", "corporat", "strain"}},
		},
		Taxonomy: types.Taxonomy{
			{Label: "finante_internationale", Keywords: []string{"global", "international", "Fed", "BCE", "ECB", "inflatie", "inflation", "dollar", "euro", "tariff", "trade war", "recession", "GDP", "PIB", "S&P 500", "Dow Jones", "NASDAQ", "emerging markets", "crypto", "bitcoin", "oil", "petrol", "commodities", "gold", "aur"}},
			{Label: "etf_bvb", Keywords: []string{"ETF", "BVB", "BET", "bursa", "stock exchange", "actiuni", "shares", "fond investitii", "TVBETETF", "BKBETETF", "InterCapital", "Patria", "obligatiuni", "bonds", "titluri de stat", "Hidroelectrica", "OMV Petrom", "Banca Transilvania", "Romgaz", "Nuclearelectrica", "dividend", "portofoliu", "randament", "yield"}},
			{Label: "imobiliare", Keywords: []string{"imobiliar", "real estate", "apartament", "rezidential", "dezvoltator", "developer", "constructi", "proiect", "Coresi", "AFI", "One United", "IULIUS", "Speedwell", "NEPI", "Globalworth", "WDP", "logistic", "birouri", "office", "retail", "mall", "hotel", "mixed-use", "Brasov", "Cluj", "Timisoara", "Bucuresti", "Bucharest", "Oradea", "Sibiu", "Iasi", "pret", "price", "chirii", "rent"}},
			{Label: "investitii_corporative", Keywords: []string{"investit", "fabrica", "factory", "plant", "FDI", "corporat", "multinational", "strain", "foreign", "milioane euro", "million", "Continental", "Bosch", "Mercedes", "Ford", "Knauf", "Stada", "Renault", "Dacia", "Nokia", "Oracle", "Amazon", "Google", "Microsoft", "Kaufland", "Lidl", "Dedeman", "locuri de munca", "jobs"}},
		},
		BaseKeywords: []string{"investitii", "Romania", "2026"},
		MaxArticles:  8,
		ContentCap:   3000,
		DetectCities: true,
	},
}
