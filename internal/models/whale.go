package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer directions relative to known exchange addresses.
const (
	DirectionExchangeOutflow    = "EXCHANGE_OUTFLOW"
	DirectionExchangeInflow     = "EXCHANGE_INFLOW"
	DirectionExchangeToExchange = "EXCHANGE_TO_EXCHANGE"
	DirectionWalletToWallet     = "WALLET_TO_WALLET"
)

// TokenTransfer is a normalized token transfer event from the explorer API.
// ValueRaw keeps the untruncated wei amount; ValueTokens is adjusted by the
// token's decimals.
type TokenTransfer struct {
	Hash            string
	FromAddress     string
	ToAddress       string
	ContractAddress string
	TokenSymbol     string
	TokenName       string
	ValueRaw        decimal.Decimal
	ValueTokens     float64
	Timestamp       time.Time
	BlockNumber     int64
	GasPrice        int64
	GasUsed         int64
}

// WhaleClassification is the 4-way direction/risk verdict for a transfer.
// FromExchange/ToExchange carry the exchange name when the address is known,
// empty otherwise.
type WhaleClassification struct {
	FromExchange string
	ToExchange   string
	Direction    string
	RiskLevel    string
}

// WhaleTransaction is a transfer whose USD value crossed the whale threshold.
type WhaleTransaction struct {
	TokenTransfer

	USDValue       float64
	Classification WhaleClassification
}
