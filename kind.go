package cgt

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the type of a transaction.
type Kind int

const (
	// Buy is an acquisition of an asset.
	Buy Kind = iota
	// Sell is a disposal of an asset.
	Sell
	// Section104Adjust adjusts the pooled cost basis of a Section 104 holding
	// without trading the asset.
	Section104Adjust
)

// Log tokens of each Kind.
const (
	tokenBuy  = "BUY"
	tokenSell = "SELL"
	tokenAdj  = "ADJ"
)

// ParseKind returns the Kind written as token in a transaction log.
// The match is case-sensitive.
func ParseKind(token string) (Kind, error) {
	switch token {
	case tokenBuy:
		return Buy, nil
	case tokenSell:
		return Sell, nil
	case tokenAdj:
		return Section104Adjust, nil
	default:
		return 0, fmt.Errorf("unknown kind %q want one of %s, %s, %s", token, tokenBuy, tokenSell, tokenAdj)
	}
}

// String returns the log token of the kind.
func (k Kind) String() string {
	switch k {
	case Buy:
		return tokenBuy
	case Sell:
		return tokenSell
	case Section104Adjust:
		return tokenAdj
	default:
		panic(fmt.Sprintf("unknown kind %d", int(k)))
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }
