package api

import (
	"testing"

	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/questionnaire"
)

func submissionSchema() *questionnaire.Schema {
	return &questionnaire.Schema{Sections: []questionnaire.Section{
		{
			Name: "Backups",
			Questions: []questionnaire.Question{
				{ID: "q1", Text: "Immutable backups?", Type: questionnaire.TypeSingleSelect, Options: []string{"No", "Yes"}},
				{ID: "q2", Text: "Offsite copies?", Type: questionnaire.TypeSingleSelect, Options: []string{"No", "Yes"}},
			},
		},
		{
			Name: "Notes",
			Questions: []questionnaire.Question{
				{ID: "q3", Text: "Anything else?", Type: questionnaire.TypeText},
			},
		},
	}}
}

func TestNewSubmissionGroupsBySection(t *testing.T) {
	store := assessment.NewStore()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{
		CompanyName: "Acme Corp", Industry: "Finance",
		CompanySize: "51-200", Region: "Europe",
		ContactEmail: "user@example.com",
	}, "assess-123")
	store.RecordAnswer("q1", "Yes")
	store.RecordAnswer("q2", "No")
	store.RecordAnswer("q3", "Legacy mainframe still in scope")

	sub := NewSubmission(store.Snapshot(), submissionSchema())

	if sub.AssessmentID != "assess-123" {
		t.Errorf("AssessmentID = %q", sub.AssessmentID)
	}
	if sub.CompanyInfo.CompanyName != "Acme Corp" {
		t.Errorf("CompanyInfo = %+v", sub.CompanyInfo)
	}

	backups := sub.Responses["Backups"]
	if len(backups) != 2 {
		t.Fatalf("Backups responses = %d, want 2", len(backups))
	}
	if backups[0].QuestionID != "q1" || backups[1].QuestionID != "q2" {
		t.Errorf("schema order not preserved: %q, %q", backups[0].QuestionID, backups[1].QuestionID)
	}
	if backups[0].Answer != "Yes" || backups[0].Section != "Backups" {
		t.Errorf("response = %+v", backups[0])
	}
	if backups[0].QuestionText != "Immutable backups?" || backups[0].QuestionType != "single_select" {
		t.Errorf("question metadata missing: %+v", backups[0])
	}

	notes := sub.Responses["Notes"]
	if len(notes) != 1 || notes[0].Answer != "Legacy mainframe still in scope" {
		t.Errorf("Notes responses = %+v", notes)
	}
}

func TestNewSubmissionOmitsBlankAnswers(t *testing.T) {
	store := assessment.NewStore()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{CompanyName: "Acme"}, "assess-123")
	store.RecordAnswer("q1", "Yes")
	store.RecordAnswer("q3", "   ")

	sub := NewSubmission(store.Snapshot(), submissionSchema())

	if len(sub.Responses["Backups"]) != 1 {
		t.Errorf("Backups responses = %+v", sub.Responses["Backups"])
	}
	if _, ok := sub.Responses["Notes"]; ok {
		t.Error("blank answer produced a Notes entry")
	}
}

func TestNewSubmissionIgnoresUnknownAnswers(t *testing.T) {
	store := assessment.NewStore()
	store.RecordOrganizationInfo(assessment.OrganizationInfo{CompanyName: "Acme"}, "assess-123")
	store.RecordAnswer("ghost", "should not appear")

	sub := NewSubmission(store.Snapshot(), submissionSchema())

	if len(sub.Responses) != 0 {
		t.Errorf("Responses = %+v, want empty", sub.Responses)
	}
}
