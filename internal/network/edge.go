package network

// Edge is an unordered pair of document ids. Source precedes Target in corpus
// order.
type Edge struct {
	Source string
	Target string
}

// EdgeSet is the output of one matcher invocation.
type EdgeSet struct {
	Model     Model
	Parameter float64
	Edges     []Edge
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Edges)
}

// Label identifies the set in logs, e.g. "cosine@0.7" or "exact".
func (s *EdgeSet) Label() string {
	if s == nil {
		return ""
	}
	if !s.Model.Parameterized() {
		return string(s.Model)
	}
	return string(s.Model) + "@" + s.Model.FormatParameter(s.Parameter)
}
