package domain

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range RequestStatuses {
		if !ValidStatus(s) {
			t.Fatalf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "PENDING"} {
		if ValidStatus(s) {
			t.Fatalf("ValidStatus(%q) = true", s)
		}
	}
}

func TestValidPlan(t *testing.T) {
	for _, p := range []string{PlanStarter, PlanProfessional, PlanEnterprise} {
		if !ValidPlan(p) {
			t.Fatalf("ValidPlan(%q) = false", p)
		}
	}
	for _, p := range []string{"", "platinum", "Starter"} {
		if ValidPlan(p) {
			t.Fatalf("ValidPlan(%q) = true", p)
		}
	}
}

func TestSpecPredicates(t *testing.T) {
	title, desc, msg, empty := "t", "d", "m", ""

	r := &ContentRequest{Title: &title, Description: &desc}
	if !r.HasStructuredSpec() || r.HasMessage() {
		t.Fatalf("title+description: structured=%v message=%v", r.HasStructuredSpec(), r.HasMessage())
	}

	r = &ContentRequest{Title: &title}
	if r.HasStructuredSpec() {
		t.Fatalf("title alone must not count as structured")
	}

	r = &ContentRequest{Message: &msg}
	if !r.HasMessage() {
		t.Fatalf("message not detected")
	}

	r = &ContentRequest{Message: &empty}
	if r.HasMessage() {
		t.Fatalf("empty message must not count")
	}

	r = &ContentRequest{}
	if r.HasStructuredSpec() || r.HasMessage() {
		t.Fatalf("zero value must carry no spec")
	}
}
