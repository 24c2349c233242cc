package domain

// QuickStats is the dashboard summary computed over the whole review ledger.
type QuickStats struct {
	// SuccessRate is 100 * correct reviews / total reviews, 0 when no
	// reviews have been recorded.
	SuccessRate float64 `json:"success_rate"`

	// TotalStudySessions counts every session ever started.
	TotalStudySessions int `json:"total_study_sessions"`

	// TotalActiveGroups counts distinct groups referenced by at least one
	// session.
	TotalActiveGroups int `json:"total_active_groups"`

	// StudyStreakDays is the length of the run of consecutive calendar days
	// with at least one review, ending today or yesterday.
	StudyStreakDays int `json:"study_streak_days"`
}

// StudyProgress reports mastery: how many distinct words have ever been
// reviewed versus how many exist in the inventory.
type StudyProgress struct {
	TotalWordsStudied   int `json:"total_words_studied"`
	TotalAvailableWords int `json:"total_available_words"`
}

// MasteryPercentage returns 100 * studied / available, 0 when the inventory
// is empty.
func (p StudyProgress) MasteryPercentage() float64 {
	if p.TotalAvailableWords == 0 {
		return 0
	}
	return 100 * float64(p.TotalWordsStudied) / float64(p.TotalAvailableWords)
}
