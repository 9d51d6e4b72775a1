package seeder

// Outcome classifies what happened to one seed record.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeWarning
	OutcomeError
	// OutcomeUnparseable means a lookup came back in a shape the seeder
	// cannot act on, such as a missing user, account or role.
	OutcomeUnparseable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomeWarning:
		return "WARNING"
	default:
		return "ERROR"
	}
}

type Result struct {
	Kind    Outcome
	Subject string
	Message string
	Err     error
}

// Summary counts outcomes over a whole run.
type Summary struct {
	Success     int
	Warning     int
	Error       int
	Unparseable int
	Results     []Result
}

func (s *Summary) add(r Result) {
	switch r.Kind {
	case OutcomeSuccess:
		s.Success++
	case OutcomeWarning:
		s.Warning++
	case OutcomeError:
		s.Error++
	case OutcomeUnparseable:
		s.Unparseable++
	}
	s.Results = append(s.Results, r)
}

// Failed reports whether any record could not be seeded.
func (s *Summary) Failed() bool {
	return s.Error > 0 || s.Unparseable > 0
}
