package engine

// MockEngine implements Engine with replaceable function fields, for
// handler and lookup tests.
type MockEngine struct {
	MockResolveAtCursor           func(source, path string, line, column int) ([]Candidate, error)
	MockSignaturesAtCursor        func(source, path string, line, column int) ([]Signature, error)
	MockAssignmentTargetsAtCursor func(source, path string, line, column int) ([]Candidate, error)
	MockUsagesOf                  func(source, path string, line, column int) ([]Candidate, error)
	SearchPaths                   []string
	CaseInsensitive               bool
	SetSearchPathsCalls           int
	SetCaseInsensitiveCalls       int
}

var _ Engine = (*MockEngine)(nil)

func NewMockEngine() *MockEngine {
	return &MockEngine{
		MockResolveAtCursor: func(source, path string, line, column int) ([]Candidate, error) {
			return nil, nil
		},
		MockSignaturesAtCursor: func(source, path string, line, column int) ([]Signature, error) {
			return nil, nil
		},
		MockAssignmentTargetsAtCursor: func(source, path string, line, column int) ([]Candidate, error) {
			return nil, nil
		},
		MockUsagesOf: func(source, path string, line, column int) ([]Candidate, error) {
			return nil, nil
		},
	}
}

func (m *MockEngine) ResolveAtCursor(source, path string, line, column int) ([]Candidate, error) {
	return m.MockResolveAtCursor(source, path, line, column)
}

func (m *MockEngine) SignaturesAtCursor(source, path string, line, column int) ([]Signature, error) {
	return m.MockSignaturesAtCursor(source, path, line, column)
}

func (m *MockEngine) AssignmentTargetsAtCursor(source, path string, line, column int) ([]Candidate, error) {
	return m.MockAssignmentTargetsAtCursor(source, path, line, column)
}

func (m *MockEngine) UsagesOf(source, path string, line, column int) ([]Candidate, error) {
	return m.MockUsagesOf(source, path, line, column)
}

func (m *MockEngine) SetSearchPaths(paths []string) {
	m.SearchPaths = paths
	m.SetSearchPathsCalls++
}

func (m *MockEngine) SetCaseInsensitive(v bool) {
	m.CaseInsensitive = v
	m.SetCaseInsensitiveCalls++
}
