package tetris

// LinesPerLevel is the number of cleared lines that advance the level by one.
const LinesPerLevel = 10

// BaseScores is the award for clearing 0..4 lines in a single lock.
var BaseScores = [5]int{0, 100, 300, 500, 800}

// CalculateScore returns the points for clearing lines rows at level.
// Counts outside 0..4 score nothing.
func CalculateScore(lines, level int) int {
	if lines < 0 || lines >= len(BaseScores) {
		return 0
	}
	return BaseScores[lines] * (level + 1)
}

// LevelFor returns the level reached after clearing total lines.
func LevelFor(total int) int {
	return total / LinesPerLevel
}
