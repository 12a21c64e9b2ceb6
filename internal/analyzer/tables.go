package analyzer

// Static classification tables. All of these are reference data loaded once;
// analyzers read them and never modify them.

// frameworkSignature detects a JS framework by literal substrings; any one
// match in an inline script counts as a detection.
type frameworkSignature struct {
	Name       string
	Signatures []string
}

var frameworkSignatures = []frameworkSignature{
	{"React", []string{"React.", "ReactDOM", "jsx"}},
	{"Vue", []string{"Vue.", "v-if", "v-for"}},
	{"Angular", []string{"angular.", "ng-"}},
	{"jQuery", []string{"jQuery", "$("}},
	{"D3", []string{"d3."}},
	{"Three.js", []string{"THREE."}},
	{"Lodash", []string{"_."}},
	{"Moment.js", []string{"moment("}},
}

// cdnPatterns maps a CDN name to host substrings that identify it.
var cdnPatterns = map[string][]string{
	"cloudflare":    {"cloudflare.com", "cdnjs.cloudflare.com"},
	"cloudfront":    {"cloudfront.net"},
	"akamai":        {"akamaihd.net", "akamai.net"},
	"fastly":        {"fastly.net"},
	"maxcdn":        {"maxcdn.com"},
	"jsdelivr":      {"jsdelivr.net"},
	"unpkg":         {"unpkg.com"},
	"google_cdn":    {"googleapis.com", "gstatic.com"},
	"microsoft_cdn": {"aspnetcdn.com"},
	"stackpath":     {"stackpath.bootstrapcdn.com"},
}

// servicePatterns maps a third-party service category to URL substrings.
var servicePatterns = map[string][]string{
	"analytics": {"google-analytics.com", "googletagmanager.com", "matomo", "piwik",
		"segment.com", "mixpanel.com", "heap.io", "amplitude.com"},
	"advertising": {"doubleclick.net", "googlesyndication.com", "amazon-adsystem.com",
		"facebook.com/tr", "outbrain.com", "taboola.com"},
	"social": {"facebook.com", "twitter.com", "linkedin.com", "instagram.com",
		"pinterest.com", "youtube.com", "tiktok.com"},
	"tracking": {"pixel", "beacon", "track", "analytics", "collect"},
	"fonts":    {"fonts.googleapis.com", "use.typekit.net", "fonts.com"},
	"maps":     {"maps.googleapis.com", "mapbox.com", "openstreetmap.org"},
	"payment":  {"stripe.com", "paypal.com", "square.com", "checkout.com"},
	"chat":     {"intercom.io", "zendesk.com", "livechat.com", "tawk.to"},
	"video":    {"youtube.com", "vimeo.com", "wistia.com", "brightcove.com"},
}

// weightedHeader scores one security header; the table weights sum to 100.
type weightedHeader struct {
	Name   string
	Weight int
}

var securityHeaders = []weightedHeader{
	{"Strict-Transport-Security", 10},
	{"Content-Security-Policy", 15},
	{"X-Frame-Options", 10},
	{"X-Content-Type-Options", 10},
	{"X-XSS-Protection", 5},
	{"Referrer-Policy", 10},
	{"Permissions-Policy", 10},
	{"Cross-Origin-Embedder-Policy", 10},
	{"Cross-Origin-Opener-Policy", 10},
	{"Cross-Origin-Resource-Policy", 10},
}

// atomicUtilities are class tokens counted as atomic CSS regardless of length.
var atomicUtilities = map[string]struct{}{
	"p-1":    {},
	"m-2":    {},
	"flex":   {},
	"grid":   {},
	"hidden": {},
}

// wellKnownAttributes are excluded from the custom-attribute bucket.
var wellKnownAttributes = map[string]struct{}{
	"id":    {},
	"class": {},
	"style": {},
	"src":   {},
	"href":  {},
	"alt":   {},
	"title": {},
}

// documentExtensions bucket downloadable link targets by file type.
var documentExtensions = map[string]struct{}{
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {},
	"ppt": {}, "pptx": {}, "zip": {}, "rar": {},
	"mp3": {}, "mp4": {}, "avi": {},
	"jpg": {}, "png": {}, "gif": {},
}

// imageExtensions is checked in priority order; first match wins.
var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "avif", "svg"}

// ariaAttributes tracked by the accessibility analyzer.
var ariaAttributes = []string{
	"aria-label", "aria-labelledby", "aria-describedby", "aria-hidden",
	"aria-live", "aria-atomic", "aria-relevant", "role", "aria-expanded",
	"aria-controls", "aria-selected", "aria-checked", "aria-disabled",
}

// semanticElements tracked by the accessibility analyzer.
var semanticElements = []string{
	"header", "nav", "main", "article", "section", "aside", "footer",
	"figure", "figcaption", "time", "mark", "details", "summary",
}
