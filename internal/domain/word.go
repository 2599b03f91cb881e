package domain

import "time"

// Word is one row of the pronunciation store. A surface form may carry up to
// three readings from different sources; PreferredReading picks one.
type Word struct {
	Surface    string
	GPTReading string
	BEPReading string
	CMUReading string
	UpdatedAt  time.Time
}

// PreferredReading returns the first non-empty reading in priority order:
// curated (gpt), then the English-katakana dictionary (bep), then the
// reading derived from the CMU pronouncing dictionary.
func (w Word) PreferredReading() string {
	switch {
	case w.GPTReading != "":
		return w.GPTReading
	case w.BEPReading != "":
		return w.BEPReading
	default:
		return w.CMUReading
	}
}
