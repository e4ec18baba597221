package gmail

import "strings"

// DetectProvider guesses the mail provider from an address domain.
// Unknown or malformed addresses are reported as generic IMAP.
func DetectProvider(address string) string {
	at := strings.LastIndexByte(address, '@')
	if at < 0 || at == len(address)-1 {
		return ProviderIMAP
	}
	switch strings.ToLower(strings.TrimSpace(address[at+1:])) {
	case "gmail.com", "googlemail.com":
		return ProviderGmail
	case "outlook.com", "hotmail.com", "live.com":
		return ProviderOutlook
	case "yahoo.com", "ymail.com":
		return ProviderYahoo
	default:
		return ProviderIMAP
	}
}
