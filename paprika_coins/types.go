package paprika_coins

// Coin represents one entry of the /coins listing
type Coin struct {
	// ID is the API slug identifier, e.g. "btc-bitcoin"
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Rank     int    `json:"rank"`
	IsNew    bool   `json:"is_new"`
	IsActive bool   `json:"is_active"`
	Type     string `json:"type"`
}

// CoinDetail represents the /coins/{id} response
type CoinDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Rank        int    `json:"rank"`
	IsActive    bool   `json:"is_active"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
