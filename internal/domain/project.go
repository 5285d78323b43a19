package domain

import "time"

// ProjectStatus represents a stage of the client-engagement pipeline
type ProjectStatus string

const (
	ProjectIntake           ProjectStatus = "intake"
	ProjectDesign           ProjectStatus = "design"
	ProjectAwaitingApproval ProjectStatus = "awaiting_approval"
	ProjectApproved         ProjectStatus = "approved"
	ProjectSessionScheduled ProjectStatus = "session_scheduled"
	ProjectCompleted        ProjectStatus = "completed"
)

// projectStageOrder defines the pipeline order. Manual stage updates may only
// move forward; automatic nudges jump forward as well, never back.
var projectStageOrder = map[ProjectStatus]int{
	ProjectIntake:           0,
	ProjectDesign:           1,
	ProjectAwaitingApproval: 2,
	ProjectApproved:         3,
	ProjectSessionScheduled: 4,
	ProjectCompleted:        5,
}

// AutoAdvanceStages are the stages nudged to session_scheduled when a booking
// is created for the project. A project already past session_scheduled is
// left untouched.
var AutoAdvanceStages = []ProjectStatus{
	ProjectIntake,
	ProjectDesign,
	ProjectAwaitingApproval,
	ProjectApproved,
}

// IsValid returns true if s is a known project status
func (s ProjectStatus) IsValid() bool {
	_, ok := projectStageOrder[s]
	return ok
}

// CanAdvanceTo returns true if the transition s -> target moves forward in
// the pipeline
func (s ProjectStatus) CanAdvanceTo(target ProjectStatus) bool {
	from, okFrom := projectStageOrder[s]
	to, okTo := projectStageOrder[target]
	return okFrom && okTo && to > from
}

// ShouldAutoAdvance returns true if a newly scheduled session nudges the
// project to session_scheduled
func (s ProjectStatus) ShouldAutoAdvance() bool {
	for _, stage := range AutoAdvanceStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Project tracks a client engagement through the pipeline stages.
// Bookings reference projects weakly via last_booking_id; deleting a project
// does not cascade to bookings.
type Project struct {
	ID            int64
	ClientID      int64
	ServiceID     *int64
	Title         string
	Description   *string
	Status        ProjectStatus
	LastBookingID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
