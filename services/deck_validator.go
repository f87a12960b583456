package services

import "tcg-backend/models"

// ValidateDeckInput checks the deck shape. Rules run in order and the first
// failure wins: the name is checked before the card count.
//
// Card ids are not checked for duplicates or for existence in the catalog.
func ValidateDeckInput(name string, cards []uint) error {
	if name == "" {
		return ErrMissingName
	}
	if len(cards) != models.DeckSize {
		return ErrInvalidCardCount
	}
	return nil
}
