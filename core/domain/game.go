package domain

import "fmt"

// Game is a video game inventory item.
type Game struct {
	ID      string `json:"id" example:"1"`
	Name    string `json:"nombre" example:"FIFA 21"`
	Console string `json:"consola" example:"PS4"`
	Stock   int    `json:"cantidad" example:"10"`
}

// GamePatch carries the fields supplied in a partial update. Stock is not
// validated here; only Sell guards against going below zero.
type GamePatch struct {
	Name    *string `json:"nombre,omitempty"`
	Console *string `json:"consola,omitempty"`
	Stock   *int    `json:"cantidad,omitempty"`
}

func (p GamePatch) Apply(g Game) Game {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Console != nil {
		g.Console = *p.Console
	}
	if p.Stock != nil {
		g.Stock = *p.Stock
	}
	return g
}

// Sell removes quantity units from stock. The game is left unchanged when
// the request cannot be served.
func (g *Game) Sell(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if g.Stock < quantity {
		return fmt.Errorf("%w: game %q has %d units, requested %d", ErrInsufficientStock, g.ID, g.Stock, quantity)
	}
	g.Stock -= quantity
	return nil
}
