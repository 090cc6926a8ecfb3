package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 60 * time.Second
	leagueID           = "00"
	seasonTypeRegular  = "Regular Season"
	maxErrorBody       = 512

	endpointRoster  = "commonteamroster"
	endpointGameLog = "playergamelog"
)

// stats.nba.com drops requests that do not look like they came from nba.com.
var requestHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Origin":          "https://www.nba.com",
	"Referer":         "https://www.nba.com/",
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}
