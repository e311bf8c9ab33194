package ui

import "fmt"

// LevelTitle is the outcome heading. Levels are shown one based.
func LevelTitle(level int, won bool) string {
	if won {
		return fmt.Sprintf("Level %d Complete!", level+1)
	}
	return fmt.Sprintf("Level %d Failed!", level+1)
}

// ScoreLine formats the final score on the defeat screen.
func ScoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
