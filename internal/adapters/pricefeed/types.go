package pricefeed

// DTOs raw del price API. La respuesta viene keyed por símbolo:
//
//	{"data":{"SOL":{"id":"SOL","vsToken":"USDC","price":147.25}}}

type priceResponse struct {
	Data map[string]priceEntry `json:"data"`
}

type priceEntry struct {
	ID      string  `json:"id"`
	VsToken string  `json:"vsToken"`
	Price   float64 `json:"price"`
}
