package manager

import (
	"snake-game/game/rng"
	"snake-game/game/types"
)

// FoodManager owns the set of active food positions. Entries are distinct
// and always on the board.
type FoodManager struct {
	grid         types.Grid
	foodList     []types.Point
	source       rng.Source
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, source rng.Source, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]types.Point, 0, types.FoodBatchSize),
		source:       source,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood adds one food item. Candidates that hit existing food are
// redrawn with no retry limit, so a board with every cell already holding
// food never returns.
func (fm *FoodManager) GenerateFood() types.Point {
	for {
		rawX := fm.source.Uint16()
		rawY := fm.source.Uint16()
		food := types.Point{
			X: rng.Scale(rawX, fm.grid.Width),
			Y: rng.Scale(rawY, fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, fm.foodList) {
			fm.foodList = append(fm.foodList, food)
			return food
		}
	}
}

// GenerateFoodIfEmpty spawns a full batch when no food is left and
// returns how many items were added.
func (fm *FoodManager) GenerateFoodIfEmpty() int {
	if len(fm.foodList) > 0 {
		return 0
	}
	for i := 0; i < types.FoodBatchSize; i++ {
		fm.GenerateFood()
	}
	return types.FoodBatchSize
}

// Consume removes the food at pos, reporting whether there was one.
func (fm *FoodManager) Consume(pos types.Point) bool {
	for i, f := range fm.foodList {
		if f == pos {
			// Remove food from list by swapping with last element and truncating
			fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
			fm.foodList = fm.foodList[:len(fm.foodList)-1]
			return true
		}
	}
	return false
}

func (fm *FoodManager) Contains(pos types.Point) bool {
	return fm.collisionMgr.IsFoodCollision(pos, fm.foodList)
}

func (fm *FoodManager) GetFoodList() []types.Point {
	foods := make([]types.Point, len(fm.foodList))
	copy(foods, fm.foodList)
	return foods
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}
