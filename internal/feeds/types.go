package feeds

// Vulnerability is one entry of the KEV catalog. Field names mirror the
// catalog's own JSON schema so records survive serialization untouched.
type Vulnerability struct {
	CVEID                      string `json:"cveID"`
	VendorProject              string `json:"vendorProject"`
	Product                    string `json:"product"`
	VulnerabilityName          string `json:"vulnerabilityName"`
	DateAdded                  string `json:"dateAdded"`
	ShortDescription           string `json:"shortDescription"`
	RequiredAction             string `json:"requiredAction"`
	DueDate                    string `json:"dueDate"`
	KnownRansomwareCampaignUse string `json:"knownRansomwareCampaignUse"`
	Notes                      string `json:"notes"`
}

// kevCatalog is the envelope around the catalog's vulnerabilities array.
type kevCatalog struct {
	Title           string          `json:"title"`
	CatalogVersion  string          `json:"catalogVersion"`
	DateReleased    string          `json:"dateReleased"`
	Count           int             `json:"count"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

// Indicator is one entry of the C2 IP blocklist, which arrives as a
// bare JSON array.
type Indicator struct {
	IPAddress  string `json:"ip_address"`
	Port       int    `json:"port"`
	Hostname   string `json:"hostname"`
	Status     string `json:"status"`
	Country    string `json:"country"`
	ASName     string `json:"as_name"`
	Malware    string `json:"malware"`
	FirstSeen  string `json:"first_seen"`
	LastOnline string `json:"last_online"`
}

// NewsItem is one headline extracted from an RSS feed. The publish date
// is kept verbatim as published.
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pubDate"`
	Source  string `json:"source"`
}

// FeedSet carries everything one collection pass produced. A source
// that failed leaves its slice empty; the set does not record which.
type FeedSet struct {
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Indicators      []Indicator     `json:"indicators"`
	News            []NewsItem      `json:"news"`
}
