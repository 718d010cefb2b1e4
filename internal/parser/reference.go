package parser

import "regexp"

// Reference-number patterns are bank-specific: the two Indian-bank-family
// formats embed settlement identifiers differently, so each variant keeps
// its own regexes tried in a fixed priority order.
var (
	// Fixed-column family: /UPI/<ref>/ with a numeric reference of at
	// least ten digits, then IMPS P2A, then NEFT/<bank segment>/<ref>.
	indianUPIRef  = regexp.MustCompile(`/UPI/(\d{10,})/`)
	indianIMPSRef = regexp.MustCompile(`(?i)IMPS[-/]P2A[-/]([A-Za-z0-9]+)`)
	indianNEFTRef = regexp.MustCompile(`(?i)NEFT/[^/]+/([A-Za-z0-9]+)`)

	// Quoted-CSV family: an S-prefixed transaction id leads the
	// narration; the UPI/IMPS/NEFT shapes differ from the fixed-column
	// family and are intentionally separate patterns.
	iobTxnIDRef = regexp.MustCompile(`^(S\d{8,})`)
	iobUPIRef   = regexp.MustCompile(`UPI/(\d{10,})`)
	iobIMPSRef  = regexp.MustCompile(`(?i)IMPS[-/ ]P2A[-/ ]([0-9]+)`)
	iobNEFTRef  = regexp.MustCompile(`(?i)NEFT[/ ]([A-Z0-9]{6,})`)
)

// ExtractReferenceIndian pulls a settlement reference out of a
// fixed-column-family narration. First matching convention wins; no match
// returns "" and is not an error.
func ExtractReferenceIndian(description string) string {
	if m := indianUPIRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	if m := indianIMPSRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	if m := indianNEFTRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return ""
}

// ExtractReferenceIOB pulls a settlement reference out of a quoted-CSV
// family narration.
func ExtractReferenceIOB(description string) string {
	if m := iobTxnIDRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	if m := iobUPIRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	if m := iobIMPSRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	if m := iobNEFTRef.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return ""
}
