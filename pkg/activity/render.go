package activity

import (
	"SevChefs-API/domain"
	"SevChefs-API/entities"
	"unicode"

	"github.com/google/uuid"
)

// SummaryEntry is the slice of an activity entry the renderer needs. The
// sentence depends on who is looking, so it is produced per request and
// never stored.
type SummaryEntry struct {
	Kind           string
	ActorID        uuid.UUID
	ActorUsername  string
	TargetUserID   *uuid.UUID
	TargetUsername string
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// actorPhrase resolves the first slot of the sentence.
func actorPhrase(e SummaryEntry, viewerID uuid.UUID) string {
	if viewerID == e.ActorID {
		return "you"
	}
	return e.ActorUsername
}

// targetPhrase resolves the second slot. The possessive form applies to
// every kind except follow, where the target is named directly.
func targetPhrase(e SummaryEntry, viewerID uuid.UUID, possessive bool) string {
	selfDirected := *e.TargetUserID == e.ActorID && viewerID == e.ActorID
	switch {
	case selfDirected && possessive:
		return "your"
	case selfDirected:
		return "yourself"
	case viewerID == *e.TargetUserID && possessive:
		return "your"
	case viewerID == *e.TargetUserID:
		return "you"
	case possessive:
		return e.TargetUsername + "'s"
	default:
		return e.TargetUsername
	}
}

// RenderSummary turns a stored activity entry into a sentence personalized
// for the viewer, e.g. "You favourited alice's recipe".
func RenderSummary(e SummaryEntry, viewerID uuid.UUID) (string, error) {
	actor := actorPhrase(e, viewerID)

	switch e.Kind {
	case entities.ActivityUploaded:
		return capitalize(actor + " uploaded a new recipe"), nil
	case entities.ActivityFavourited:
		if e.TargetUserID == nil {
			return capitalize(actor + " favourited a recipe"), nil
		}
		return capitalize(actor + " favourited " + targetPhrase(e, viewerID, true) + " recipe"), nil
	case entities.ActivityCommented:
		if e.TargetUserID == nil {
			return capitalize(actor + " commented on a recipe"), nil
		}
		return capitalize(actor + " commented on " + targetPhrase(e, viewerID, true) + " recipe"), nil
	case entities.ActivityFollowed:
		if e.TargetUserID == nil {
			return "", domain.ErrUnknownActivityKind
		}
		return capitalize(actor + " followed " + targetPhrase(e, viewerID, false)), nil
	default:
		return "", domain.ErrUnknownActivityKind
	}
}
