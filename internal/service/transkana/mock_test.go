package transkana

// dictionaryMock is a hand-written mock of the dictionary interface.
type dictionaryMock struct {
	LookupFunc func(surface string) (string, bool)
	ReadyFunc  func() bool
}

func (m *dictionaryMock) Lookup(surface string) (string, bool) {
	if m.LookupFunc == nil {
		return "", false
	}
	return m.LookupFunc(surface)
}

func (m *dictionaryMock) Ready() bool {
	if m.ReadyFunc == nil {
		return false
	}
	return m.ReadyFunc()
}

type readerMock struct {
	ReadingFunc func(text string) string
}

func (m *readerMock) Reading(text string) string { return m.ReadingFunc(text) }
