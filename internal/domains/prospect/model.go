package prospect

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is a prospect's position in the signing pipeline.
type Stage string

const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageEvaluating  Stage = "evaluating"
	StageNegotiating Stage = "negotiating"
	StageConverted   Stage = "converted"
	StageDeclined    Stage = "declined"
)

var Stages = []Stage{
	StageNew, StageContacted, StageEvaluating,
	StageNegotiating, StageConverted, StageDeclined,
}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// StageTransitions is the full transition table. Converted and declined
// are terminal.
var StageTransitions = map[Stage][]Stage{
	StageNew:         {StageContacted, StageDeclined},
	StageContacted:   {StageEvaluating, StageDeclined},
	StageEvaluating:  {StageNegotiating, StageDeclined},
	StageNegotiating: {StageConverted, StageDeclined},
	StageConverted:   {},
	StageDeclined:    {},
}

func (s Stage) CanTransitionTo(to Stage) bool {
	for _, allowed := range StageTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s Stage) Terminal() bool {
	return len(StageTransitions[s]) == 0
}

type Source string

const (
	SourceQueryLetter Source = "query_letter"
	SourceReferral    Source = "referral"
	SourceConference  Source = "conference"
	SourceSocialMedia Source = "social_media"
	SourceWebsite     Source = "website"
	SourceOther       Source = "other"
)

var Sources = []Source{
	SourceQueryLetter, SourceReferral, SourceConference,
	SourceSocialMedia, SourceWebsite, SourceOther,
}

func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}

// Prospect is a potential author being evaluated before signing.
type Prospect struct {
	ID      uuid.UUID  `json:"id"`
	AgentID *uuid.UUID `json:"agent_id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	Source Source `json:"source,omitempty"`
	Stage  Stage  `json:"stage"`

	GenreInterest      *string `json:"genre_interest"`
	ProjectTitle       *string `json:"project_title"`
	ProjectDescription *string `json:"project_description"`
	EstimatedWordCount *int    `json:"estimated_word_count"`

	FollowUpDate    *time.Time `json:"follow_up_date"`
	LastContactDate *time.Time `json:"last_contact_date"`
	StageChangedAt  *time.Time `json:"stage_changed_at"`
	DeclineReason   *string    `json:"decline_reason"`

	Notes *string `json:"notes"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Prospect) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Active means still in the pipeline, neither converted nor declined.
func (p *Prospect) Active() bool {
	return !p.Stage.Terminal()
}

// DaysInCurrentStage is the whole days since the last stage change, 0 when
// the prospect has never left its initial stage.
func (p *Prospect) DaysInCurrentStage(now time.Time) int {
	if p.StageChangedAt == nil {
		return 0
	}
	return int(now.Sub(*p.StageChangedAt).Hours() / 24)
}

// TrackedFields returns the audit snapshot. The stage is recorded under
// the status key so stage moves land as status_changed activities.
func (p *Prospect) TrackedFields() map[string]string {
	return map[string]string{
		"first_name":           p.FirstName,
		"last_name":            p.LastName,
		"email":                strVal(p.Email),
		"phone":                strVal(p.Phone),
		"source":               string(p.Source),
		"status":               string(p.Stage),
		"genre_interest":       strVal(p.GenreInterest),
		"project_title":        strVal(p.ProjectTitle),
		"project_description":  strVal(p.ProjectDescription),
		"estimated_word_count": intVal(p.EstimatedWordCount),
		"follow_up_date":       dateVal(p.FollowUpDate),
		"last_contact_date":    dateVal(p.LastContactDate),
		"decline_reason":       strVal(p.DeclineReason),
		"notes":                strVal(p.Notes),
		"agent_id":             uuidVal(p.AgentID),
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(i *int) string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%d", *i)
}

func dateVal(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func uuidVal(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
