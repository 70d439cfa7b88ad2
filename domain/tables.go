package domain

// Table is a mongo collection name
type Table string

const (
	TableAccounts      Table = "accounts"
	TableActivities    Table = "activities"
	TableAuctions      Table = "auctions"
	TableAuctionParams Table = "auction_params"
	TableCounters      Table = "counters"
	TablePayTokens     Table = "pay_tokens"
)
