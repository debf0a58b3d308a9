package responses

import "github.com/waterlily/backend/database"

// reviewSuccessor holds the forward chain a response's review status moves
// through. Skipping a step or moving backwards is not allowed.
var reviewSuccessor = map[database.ReviewStatus]database.ReviewStatus{
	database.ReviewStatusNotSubmitted:  database.ReviewStatusPendingReview,
	database.ReviewStatusPendingReview: database.ReviewStatusInReview,
	database.ReviewStatusInReview:      database.ReviewStatusReviewed,
}

func canTransitionReview(from, to database.ReviewStatus) bool {
	return reviewSuccessor[from] == to
}
