package usecase

import "github.com/google/uuid"

const (
	EntityProject = "project"
	EntitySkill   = "skill"
	EntityProfile = "profile"

	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionVisibility = "visibility"
)

// ContentNotifier is told about every successful admin write.
type ContentNotifier interface {
	ContentUpdated(entity, action string, id uuid.UUID)
}

type noopNotifier struct{}

func (noopNotifier) ContentUpdated(string, string, uuid.UUID) {}

func notifierOrNoop(n ContentNotifier) ContentNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
