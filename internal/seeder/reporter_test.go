package seeder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_Report(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewReporter(out)

	r.Report(Result{Kind: OutcomeSuccess, Subject: "role admin", Message: "created"})
	r.Report(Result{Kind: OutcomeWarning, Subject: "role admin", Message: "already exists"})
	r.Report(Result{Kind: OutcomeError, Subject: "admin x", Message: "email: can't be blank"})
	r.Report(Result{Kind: OutcomeUnparseable, Subject: "membership x", Message: "user not found"})

	assert.Equal(t, "[SUCCESS] role admin: created\n"+
		"[WARNING] role admin: already exists\n"+
		"[ERROR] admin x: email: can't be blank\n"+
		"[ERROR] membership x: user not found (unparseable)\n", out.String())
}

func TestSummary_Failed(t *testing.T) {
	s := &Summary{}
	s.add(Result{Kind: OutcomeSuccess})
	s.add(Result{Kind: OutcomeWarning})
	assert.False(t, s.Failed())

	s.add(Result{Kind: OutcomeUnparseable})
	assert.True(t, s.Failed())
	assert.Len(t, s.Results, 3)
}
