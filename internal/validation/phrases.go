// Package validation checks generated email drafts against outreach
// constraints. Validation is pure: it inspects text and produces violations,
// never touching the network or filesystem.
package validation

// ctaPhrases are acceptable low-pressure call-to-action forms. A draft must
// close with one of these; anything pushier reads like a sales blast.
var ctaPhrases = []string{
	"15 minutes",
	"15-minute",
	"fifteen minutes",
	"brief call",
	"quick call",
	"short call",
	"brief conversation",
	"quick conversation",
	"brief chat",
	"worth a conversation",
	"open to a conversation",
}

// superlativeDenylist holds promotional phrasing suppressed in anti-spam
// mode. Owners in heavily-prospected sectors delete anything containing
// these on sight.
var superlativeDenylist = []string{
	"industry-leading",
	"industry leading",
	"market-leading",
	"market leading",
	"best-in-class",
	"best in class",
	"world-class",
	"world class",
	"premier",
	"unmatched",
	"unparalleled",
	"unrivaled",
	"top-tier",
	"cutting-edge",
	"state-of-the-art",
	"revolutionary",
	"game-changing",
	"one-stop shop",
}

// experienceClaimPhrases assert direct sector expertise. They are only
// allowed when the advisor actually has a matched industry or deal; with no
// match they are fabrication.
var experienceClaimPhrases = []string{
	"our experience in your industry",
	"our experience in your sector",
	"our experience in this industry",
	"our experience in this sector",
	"our work in your industry",
	"our work in your sector",
	"our track record in",
	"we specialize in",
	"we've advised",
	"we have advised",
	"we've sold",
	"we have sold",
	"deals we've closed",
	"transactions we've completed",
	"companies like yours that we",
	"extensive experience in your",
	"deep experience in your",
}
