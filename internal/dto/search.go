package dto

// SearchResponse groups the three independent result lists of a global
// search. All three are always present, possibly empty.
type SearchResponse struct {
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	Banks        []BankResponse        `json:"banks"`
}

// EmptySearchResponse returns a SearchResponse with three empty lists.
func EmptySearchResponse() *SearchResponse {
	return &SearchResponse{
		Accounts:     []AccountResponse{},
		Transactions: []TransactionResponse{},
		Banks:        []BankResponse{},
	}
}
