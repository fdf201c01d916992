package authenticity

import "regexp"

// Machine-readable signal flags, in evaluation order.
const (
	FlagSpamLink        = "SPAM_LINK"
	FlagRepeatedChars   = "REPEATED_CHARS"
	FlagTooShort        = "TOO_SHORT"
	FlagVagueTitle      = "VAGUE_TITLE"
	FlagGibberish       = "GIBBERISH"
	FlagJokeTest        = "JOKE_TEST"
	FlagNoCivicKeywords = "NO_CIVIC_KEYWORDS"
	FlagRepetitive      = "REPETITIVE"
)

// Human-readable reasons, paired one-to-one with the flags above.
const (
	reasonSpamLink        = "Contains promotional links or spam keywords"
	reasonRepeatedChars   = "Contains excessive repeated characters"
	reasonTooShort        = "Description too short to be a genuine complaint"
	reasonVagueTitle      = "Title is too vague or short"
	reasonGibberish       = "Text appears to contain gibberish or non-words"
	reasonJokeTest        = "Appears to be a test or joke submission"
	reasonNoCivicKeywords = "No recognizable civic issue keywords found"
	reasonRepetitive      = "Excessive word repetition detected"
)

// spamPattern matches promotional links and sales language.
var spamPattern = regexp.MustCompile(`(?i)http|bit\.ly|tinyurl|click here|buy now|discount|promo code|free.*code|deal of`)

// jokePattern matches test and joke submissions.
var jokePattern = regexp.MustCompile(`(?i)lol|haha|hehe|test complaint|just testing|fake complaint|this is a test|not real`)

// civicKeywords is the bilingual civic-issue vocabulary (English plus
// transliterated Hindi terms: paani=water, bijli=electricity, sadak=road,
// kachra=garbage, nali=drain). Matched as substrings of the combined text,
// not whole words.
var civicKeywords = []string{
	"pothole", "road", "street", "light", "streetlight", "electricity", "water",
	"garbage", "trash", "waste", "sewer", "drain", "flooding", "flood", "pipe",
	"park", "playground", "tree", "bench", "graffiti", "vandal", "bus", "transit",
	"signal", "traffic", "parking", "car", "vehicle", "abandoned", "dangerous",
	"hazard", "broken", "repair", "smell", "pest", "rat", "dirty", "unsafe",
	"blocked", "clogged", "noise", "construction", "dust", "smoke", "paani",
	"bijli", "sadak", "kachra", "nali", "school", "hospital", "leak",
}
