package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's current head position.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) TerminationReason {
	if cm.IsWallCollision(snake.Head()) {
		return ReasonWallCollision
	}
	if cm.IsSelfCollision(snake) {
		return ReasonSelfCollision
	}
	return ReasonNone
}

// IsWallCollision checks if a position lies outside the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.IsSelfColliding()
}

// IsFoodCollision checks if a position collides with any food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, foodList []types.Point) bool {
	for _, food := range foodList {
		if pos == food {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position can take a new food item.
// Only the board edges and existing food are considered; food may land
// under the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, foodList []types.Point) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !cm.IsFoodCollision(pos, foodList)
}
