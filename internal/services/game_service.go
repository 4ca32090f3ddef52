package services

import (
	"fmt"

	"boardcamp/internal/models"
	"boardcamp/internal/repositories"
)

// GameService handles business logic related to games.
type GameService struct {
	games      repositories.GameRepository
	categories repositories.CategoryRepository
}

// NewGameService creates a new GameService.
func NewGameService(games repositories.GameRepository, categories repositories.CategoryRepository) *GameService {
	return &GameService{
		games:      games,
		categories: categories,
	}
}

// GetGames retrieves all games with their category name. A non-empty
// nameFilter keeps only games whose name starts with it, ignoring case.
func (s *GameService) GetGames(nameFilter string) ([]models.GameListing, error) {
	games, err := s.games.GetAll()
	if err != nil {
		return nil, err
	}
	if nameFilter == "" {
		return games, nil
	}

	filtered := make([]models.GameListing, 0, len(games))
	for _, game := range games {
		if hasPrefixFold(game.Name, nameFilter) {
			filtered = append(filtered, game)
		}
	}
	return filtered, nil
}

// CreateGame creates a game after checking its category exists and its name
// is free.
func (s *GameService) CreateGame(game *models.Game) error {
	_, exists, err := lookup(func() (*models.Category, error) { return s.categories.GetByID(game.CategoryID) })
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("category %d: %w", game.CategoryID, ErrInvalidReference)
	}

	_, exists, err = lookup(func() (*models.Game, error) { return s.games.GetByName(game.Name) })
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("game %q already exists: %w", game.Name, ErrConflict)
	}

	if err := s.games.Create(game); err != nil {
		return conflictOr(err, "game %q already exists", game.Name)
	}
	return nil
}
