// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package textindex

// stopwords is the fixed bilingual stopword set applied during tokenization.
// Vietnamese entries are stored in their diacritic-stripped form because
// tokens are compared after Normalize has run.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
}

var stopwordList = []string{
	// Vietnamese (diacritics stripped)
	"va", "cua", "la", "co", "khong", "duoc", "cho", "trong", "den",
	"voi", "nhu", "nay", "do", "khi", "tai", "ve", "sau", "tu", "mot",
	"hai", "ba", "nhung", "cac", "da", "se", "dang", "vi", "nen", "thi",
	"ma", "anh", "em", "toi", "ban", "minh", "nguoi", "gi", "sao", "nao",
	"cung", "chi", "lai", "ra", "vao", "len", "xuong", "qua", "rat",
	"hon", "nhat", "con", "neu", "hay", "hoac", "vay", "nhe", "oi",
	"roi", "xin", "rang", "boi", "theo", "tren", "duoi", "giua", "ngoai",
	"truoc", "deu", "moi", "tung", "vai", "nhieu", "it", "phai", "can",
	"muon", "bi", "bang", "nua", "vua", "day", "kia", "the", "ay",
	"minh", "chung", "ho", "no", "ong", "ba", "co", "chu", "bac",
	"cai", "chiec", "cuon", "quyen", "nhung", "may", "bao", "lam",
	"viec", "dieu", "luc", "noi", "cach", "hoi", "biet", "thay",

	// English
	"the", "and", "for", "are", "but", "not", "you", "all", "any",
	"can", "had", "her", "was", "one", "our", "out", "get", "has",
	"him", "his", "how", "now", "see", "two", "way", "who", "its",
	"did", "that", "this", "with", "they", "them", "then", "than",
	"from", "have", "been", "were", "will", "would", "could", "should",
	"into", "about", "after", "before", "over", "under", "again",
	"more", "most", "other", "some", "such", "only", "own", "same",
	"too", "very", "just", "also", "each", "few", "both", "between",
	"during", "through", "where", "when", "what", "which", "while",
	"your", "these", "those", "there", "here", "because", "does",
	"doing", "until", "above", "below", "off", "on", "in", "to", "of",
	"at", "by", "is", "it", "as", "an", "or", "be", "we", "he", "she",
	"so", "no", "nor", "do", "if", "up", "my", "me",
}
