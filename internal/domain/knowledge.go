package domain

import (
	"github.com/shopspring/decimal"
)

// QAEntry is a single learned question/answer pair.
// Questions are not unique; the first structural match wins on lookup.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AssetEntry is the cached snapshot of a single coin's last known market data.
// Price and MarketCap are always present; Liquidity and Prediction carry an
// explicit "unavailable" marker instead of being omitted.
type AssetEntry struct {
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	Price      decimal.Decimal `json:"price"`
	MarketCap  decimal.Decimal `json:"market_cap"`
	Liquidity  Amount          `json:"liquidity"`
	Prediction TrendLabel      `json:"prediction"`
}

// KnowledgeDocument is the single persisted aggregate: learned Q&A pairs plus
// cached asset entries. All mutations go through load-entire / mutate /
// save-entire; there are no partial writes.
type KnowledgeDocument struct {
	Questions []QAEntry             `json:"questions"`
	Coins     map[string]AssetEntry `json:"coins"`
}

// NewKnowledgeDocument returns an empty, fully initialized document.
func NewKnowledgeDocument() *KnowledgeDocument {
	return &KnowledgeDocument{
		Questions: []QAEntry{},
		Coins:     map[string]AssetEntry{},
	}
}

// Normalize repairs a freshly decoded document so the schema invariants hold:
// the questions slice and coins map are never nil, and an empty prediction
// decodes as the explicit unavailable marker.
func (d *KnowledgeDocument) Normalize() {
	if d.Questions == nil {
		d.Questions = []QAEntry{}
	}
	if d.Coins == nil {
		d.Coins = map[string]AssetEntry{}
	}
	for key, entry := range d.Coins {
		if entry.Prediction == "" {
			entry.Prediction = TrendUnavailable
			d.Coins[key] = entry
		}
	}
}

// QuestionTexts returns the question strings in insertion order.
func (d *KnowledgeDocument) QuestionTexts() []string {
	texts := make([]string, 0, len(d.Questions))
	for _, qa := range d.Questions {
		texts = append(texts, qa.Question)
	}
	return texts
}

// Learn appends a new Q&A pair. Duplicates are tolerated; re-teaching the
// same question produces a second entry.
func (d *KnowledgeDocument) Learn(question, answer string) {
	d.Questions = append(d.Questions, QAEntry{Question: question, Answer: answer})
}
