package types

// Transaction is an immutable record of value transfer between two accounts.
type Transaction struct {
	Sender    Address
	Recipient Address
	Amount    uint64
}

// NewTransaction creates a new Transaction.
func NewTransaction(sender, recipient Address, amount uint64) Transaction {
	return Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// canonical lowers the transaction to a map so the canonical block encoding
// emits its field names in sorted order.
func (tx Transaction) canonical() map[string]any {
	return map[string]any{
		"sender":    string(tx.Sender),
		"recipient": string(tx.Recipient),
		"amount":    tx.Amount,
	}
}
