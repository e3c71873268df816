package optimizer

// Canonical second-language (LV2) and option (OPT) codes recognized by the
// placement rules. A code outside these lists is treated as unknown and is
// exempt from the feasibility oracle's elective-offering checks -- an
// unrecognized code carries no placement obligation.
var knownLV2Codes = map[string]bool{
	"ESP":  true,
	"ITA":  true,
	"ALL":  true,
	"ARA":  true,
	"CHI":  true,
	"RUS":  true,
	"PORT": true,
}

var knownOPTCodes = map[string]bool{
	"LATIN": true,
	"CHAV":  true,
	"GREC":  true,
	"CHAD":  true,
	"EURO":  true,
}

// specializedOPTCodes are the scarce options that trigger the
// specialization-preservation rule when a class offers them.
var specializedOPTCodes = map[string]bool{
	"LATIN": true,
	"CHAV":  true,
}

// IsKnownLV2 reports whether code is in the canonical LV2 list.
func IsKnownLV2(code string) bool {
	return code != "" && knownLV2Codes[code]
}

// IsKnownOPT reports whether code is in the canonical OPT list.
func IsKnownOPT(code string) bool {
	return code != "" && knownOPTCodes[code]
}

// IsSpecializedOPT reports whether code is one of the scarce options that
// specialized classes are built around (LATIN, CHAV).
func IsSpecializedOPT(code string) bool {
	return code != "" && specializedOPTCodes[code]
}
