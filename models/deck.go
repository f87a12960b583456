// models/deck.go
package models

import "time"

// DeckSize is the exact number of cards a persisted deck holds.
const DeckSize = 10

// Deck is a named set of ten card references owned by one user.
type Deck struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	UserID    uint       `json:"userId" gorm:"index;not null"`
	Cards     []DeckCard `json:"cards" gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// DeckCard links a deck to one catalog card. Rows are created and destroyed
// as a batch with their parent deck.
type DeckCard struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	DeckID uint `json:"deckId" gorm:"index;not null"`
	CardID uint `json:"cardId" gorm:"index;not null"`
}

// DeckSummary is the list projection returned by /decks/mine.
type DeckSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CardIDs returns the card references in storage order.
func (d *Deck) CardIDs() []uint {
	ids := make([]uint, 0, len(d.Cards))
	for _, dc := range d.Cards {
		ids = append(ids, dc.CardID)
	}
	return ids
}

// NewDeckCards builds the association rows for cardIDs. DeckID is filled by the caller
// or by gorm when saved through the parent.
func NewDeckCards(deckID uint, cardIDs []uint) []DeckCard {
	rows := make([]DeckCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		rows = append(rows, DeckCard{DeckID: deckID, CardID: id})
	}
	return rows
}
