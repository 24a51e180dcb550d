package common

const (
	// DefaultCurrency is the ISO code used when a campaign has none.
	DefaultCurrency = "KGS"

	// DefaultLocale drives number grouping for formatted amounts.
	DefaultLocale = "ru-RU"

	// UntitledCampaign replaces empty campaign titles in listings.
	UntitledCampaign = "Untitled"
)
