package model

// Recipe difficulty levels as the upstream API spells them.
const (
	DifficultyEasy      = "Easy"
	DifficultyMedium    = "Medium"
	DifficultyDifficult = "Difficult"
)

// ChefHatCount maps a difficulty to the number of chef hats the UI
// renders for it. Unknown difficulties get zero hats.
func ChefHatCount(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyDifficult:
		return 3
	default:
		return 0
	}
}
