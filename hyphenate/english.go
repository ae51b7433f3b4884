package hyphenate

// englishPatterns is a subset of the classic TeX English hyphenation
// patterns, in the usual "letters-with-embedded-priority-digits" notation.
// Grounded on the teacher's englishHyphenationPatterns in hyphenate.go; for
// production use this table would be replaced by a full pattern file from
// https://github.com/hyphenation/tex-hyphen.
var englishPatterns = []string{
	".anti5", ".co4me", ".co4op", ".dis3", ".ex1", ".inter3", ".multi3",
	".non1", ".post3", ".pre3", ".pro3", ".re3", ".semi3", ".sub3",
	".super5", ".trans3", ".un1", ".under3",

	"5able.", "5ible.", "5ing.", "5tion.", "5sion.", "5ness.", "5ment.",
	"5ful.", "5less.", "5ous.", "5ive.", "3ence.", "3ance.", "3ity.",
	"3ency.", "3ancy.", "5er.", "5est.", "5ed.",

	"1ba", "1be", "1bi", "1bo", "1bu", "1ca", "1ce", "1ci", "1co", "1cu",
	"1da", "1de", "1di", "1do", "1du", "1ga", "1ge", "1gi", "1go", "1gu",
	"1la", "1le", "1li", "1lo", "1lu", "1ma", "1me", "1mi", "1mo", "1mu",
	"1na", "1ne", "1ni", "1no", "1nu", "1pa", "1pe", "1pi", "1po", "1pu",
	"1ra", "1re", "1ri", "1ro", "1ru", "1sa", "1se", "1si", "1so", "1su",
	"1ta", "1te", "1ti", "1to", "1tu", "1va", "1ve", "1vi", "1vo", "1vu",

	"2bb", "2cc", "2dd", "2ff", "2gg", "2ll", "2mm", "2nn", "2pp", "2rr",
	"2ss", "2tt",

	"ta1ble", "rec1ord", "pre1sent", "ex1am", "exam1ple", "con1test",
	"pro1ject", "in1for", "com1put", "al1go", "hyph1en", "pat1tern",
}

// NewEnglish returns a Hyphenator for English text, requiring at least two
// letters before a break and three after, matching TeX's usual defaults.
func NewEnglish() *LiangDictionary {
	return NewLiangDictionary(englishPatterns, 2, 3)
}
