package cmu

import (
	"strings"

	"github.com/heartmarshall/transkana/internal/romaji"
)

// vowel describes how an ARPAbet vowel is written in romaji and whether it
// takes a long mark.
type vowel struct {
	romaji string
	long   bool
}

var vowelMap = map[string]vowel{
	"AA": {"a", false},
	"AE": {"a", false},
	"AH": {"a", false},
	"AO": {"o", true},
	"AW": {"au", false},
	"AY": {"ai", false},
	"EH": {"e", false},
	"ER": {"a", true},
	"EY": {"ei", false},
	"IH": {"i", false},
	"IY": {"i", true},
	"OW": {"o", true},
	"OY": {"oi", false},
	"UH": {"u", false},
	"UW": {"u", true},
}

// onsetMap maps ARPAbet consonants to the romaji prefix used before a vowel.
var onsetMap = map[string]string{
	"B":  "b",
	"CH": "ch",
	"D":  "d",
	"DH": "z",
	"F":  "f",
	"G":  "g",
	"HH": "h",
	"JH": "j",
	"K":  "k",
	"L":  "r",
	"M":  "m",
	"N":  "n",
	"NG": "ng",
	"P":  "p",
	"R":  "r",
	"S":  "s",
	"SH": "sh",
	"T":  "t",
	"TH": "s",
	"V":  "b",
	"W":  "w",
	"Y":  "y",
	"Z":  "z",
	"ZH": "j",
}

// codaMap gives the epenthetic syllable for a consonant with no vowel after it.
var codaMap = map[string]string{
	"B":  "bu",
	"CH": "chi",
	"D":  "do",
	"DH": "zu",
	"F":  "fu",
	"G":  "gu",
	"JH": "ji",
	"K":  "ku",
	"L":  "ru",
	"P":  "pu",
	"S":  "su",
	"SH": "shu",
	"T":  "to",
	"TH": "su",
	"V":  "bu",
	"Z":  "zu",
	"ZH": "ju",
}

// shortVowels precede a doubled (ッ) final stop.
var shortVowels = map[string]bool{"AA": true, "AE": true, "AH": true, "EH": true, "IH": true, "UH": true}

var geminates = map[string]bool{"P": true, "T": true, "K": true, "CH": true, "D": true, "G": true, "JH": true}

func isVowel(p string) bool {
	_, ok := vowelMap[p]
	return ok
}

// PhonemesToKana approximates a stress-free ARPAbet sequence in katakana.
// Unknown phonemes are ignored. The result is empty when nothing could be
// rendered.
func PhonemesToKana(phonemes []string) string {
	var (
		b    strings.Builder
		long bool // last written kana ends in a long mark
	)
	write := func(r string) {
		b.WriteString(romaji.Convert(r))
		long = false
	}
	lengthen := func() {
		if b.Len() > 0 && !long {
			b.WriteString("ー")
			long = true
		}
	}

	for i := 0; i < len(phonemes); i++ {
		p := phonemes[i]
		next := ""
		if i+1 < len(phonemes) {
			next = phonemes[i+1]
		}

		if v, ok := vowelMap[p]; ok {
			write(v.romaji)
			if v.long {
				lengthen()
			}
			continue
		}

		onset, ok := onsetMap[p]
		if !ok {
			continue
		}

		if v, ok := vowelMap[next]; ok {
			write(syllable(p, onset, next, v.romaji))
			if v.long {
				lengthen()
			}
			i++
			continue
		}

		switch p {
		case "N":
			write("nn")
		case "M":
			if next == "P" || next == "B" || next == "M" {
				write("nn")
			} else {
				write("mu")
			}
		case "NG":
			write("nn")
			if next == "" {
				write("gu")
			}
		case "R":
			if i > 0 && isVowel(phonemes[i-1]) {
				lengthen()
			} else {
				write("ru")
			}
		case "HH", "W", "Y":
		default:
			if next == "" && geminates[p] && i > 0 && shortVowels[phonemes[i-1]] {
				write("xtu")
			}
			write(codaMap[p])
		}
	}

	return b.String()
}

// syllable builds the romaji for consonant p followed by vowel romaji v.
// Only the first vowel letter joins the consonant; the rest stands alone.
func syllable(p, onset, vowelName, v string) string {
	head, tail := v[:1], v[1:]

	switch {
	case (p == "K" || p == "G") && vowelName == "AE":
		return onset + "y" + head + tail
	case p == "T" && head == "i":
		return "thi" + tail
	case p == "D" && head == "i":
		return "dhi" + tail
	case p == "T" && head == "u":
		return "toxu" + tail
	case p == "D" && head == "u":
		return "doxu" + tail
	case p == "W" && head == "o":
		return "uxo" + tail
	case p == "W" && head == "u":
		return "u" + tail
	case p == "Y" && head == "i":
		return "i" + tail
	case p == "NG":
		return "nng" + head + tail
	}
	return onset + head + tail
}
