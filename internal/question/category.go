package question

import "fmt"

// Category classifies a question by soft-skill topic.
type Category int

const (
	CategoryCommunication Category = iota
	CategoryTeamwork
	CategoryLeadership
	CategoryConflictResolution
	CategoryFeedback
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCommunication,
		CategoryTeamwork,
		CategoryLeadership,
		CategoryConflictResolution,
		CategoryFeedback,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= CategoryCommunication && c <= CategoryFeedback
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCommunication:
		return "Communication"
	case CategoryTeamwork:
		return "Teamwork"
	case CategoryLeadership:
		return "Leadership"
	case CategoryConflictResolution:
		return "Conflict Resolution"
	case CategoryFeedback:
		return "Working with Feedback"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func (c Category) String() string {
	switch c {
	case CategoryCommunication:
		return "communication"
	case CategoryTeamwork:
		return "teamwork"
	case CategoryLeadership:
		return "leadership"
	case CategoryConflictResolution:
		return "conflict-resolution"
	case CategoryFeedback:
		return "feedback"
	default:
		return fmt.Sprintf("category-%d", int(c))
	}
}
