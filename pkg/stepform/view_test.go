package stepform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildView_ContactStep(t *testing.T) {
	data := NewFormData()
	data[FieldName] = "Jo"
	view := BuildView(StepContact, data, ErrorMap{FieldEmail: "Email is required"})

	if !view.IsFirst || view.IsLast || view.Valid {
		t.Fatalf("unexpected flags: %+v", view)
	}
	if view.Title != "Contact Info" {
		t.Fatalf("unexpected title %q", view.Title)
	}
	want := []FieldView{
		{Name: "name", Label: "Name", InputType: "text", Value: "Jo"},
		{Name: "email", Label: "Email", InputType: "email", Error: "Email is required"},
		{Name: "phone", Label: "Phone", InputType: "tel"},
	}
	if diff := cmp.Diff(want, view.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	wantTabs := []StepTab{
		{Number: 1, Title: "Contact Info", Active: true},
		{Number: 2, Title: "Address Info"},
		{Number: 3, Title: "Review"},
	}
	if diff := cmp.Diff(wantTabs, view.Tabs); diff != "" {
		t.Fatalf("tabs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildView_ReviewListsEveryField(t *testing.T) {
	view := BuildView(StepReview, NewFormData(), nil)
	if len(view.Rows) != len(Fields()) {
		t.Fatalf("expected %d rows, got %d", len(Fields()), len(view.Rows))
	}
	if !view.IsLast || view.IsFirst {
		t.Fatalf("unexpected flags: %+v", view)
	}
	if !view.Rows[4].Optional || view.Rows[4].Name != "addressLine2" {
		t.Fatalf("expected addressLine2 marked optional, got %+v", view.Rows[4])
	}
}

func TestBuildView_InvalidStepFallsBackToContact(t *testing.T) {
	if got := BuildView(Step(9), NewFormData(), nil).Step; got != StepContact {
		t.Fatalf("expected contact step, got %d", got)
	}
}
