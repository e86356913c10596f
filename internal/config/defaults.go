package config

// Default returns the compiled-in configuration. The source URLs point
// at the public feeds the report is built from; everything is
// overridable through the YAML file or the environment.
func Default() *Config {
	return &Config{
		OutputDir: "site/reports",
		Cache: CacheConfig{
			Path:     ".cache/feeds.json",
			TTLHours: 12,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: 10,
			UserAgent:      "Mozilla/5.0 (compatible; threatdigest/1.0)",
		},
		Sources: SourcesConfig{
			KEVURL:   "https://www.cisa.gov/sites/default/files/feeds/known_exploited_vulnerabilities.json",
			FeodoURL: "https://feodotracker.abuse.ch/downloads/ipblocklist.json",
			RSS: []RSSFeed{
				{Name: "The Hacker News", URL: "https://feeds.feedburner.com/TheHackersNews"},
				{Name: "BleepingComputer", URL: "https://www.bleepingcomputer.com/feed/"},
				{Name: "Krebs on Security", URL: "https://krebsonsecurity.com/feed/"},
				{Name: "Dark Reading", URL: "https://www.darkreading.com/rss.xml"},
			},
		},
		Scoring: ScoringConfig{
			KEVWeight:         15,
			RansomwareWeight:  25,
			C2Weight:          2,
			C2ScoreCap:        20,
			GuardedThreshold:  30,
			ElevatedThreshold: 60,
			CriticalThreshold: 100,
		},
		Limits: LimitsConfig{
			MaxIndicators:  40,
			MaxNewsPerFeed: 10,
		},
		RansomwareCVEs: []string{
			"CVE-2018-13379",
			"CVE-2019-19781",
			"CVE-2020-1472",
			"CVE-2021-34473",
			"CVE-2021-34527",
			"CVE-2021-44228",
			"CVE-2023-0669",
			"CVE-2023-27350",
			"CVE-2023-34362",
			"CVE-2023-3519",
			"CVE-2023-4966",
			"CVE-2024-1709",
		},
		TrendSeeds: TrendSeeds{
			KEV:        []int{8, 11, 9, 13, 10, 12, 9},
			C2:         []int{52, 61, 48, 57, 66, 59, 54},
			Ransomware: []int{1, 2, 1, 3, 2, 2, 1},
		},
		Keywords: []string{
			"ransomware", "phishing", "zero-day", "vulnerability", "breach",
			"malware", "botnet", "exploit", "patch", "ddos", "credential",
			"backdoor", "spyware", "supply chain", "apt", "cisa", "vpn", "mfa",
		},
		KEVTechnique: Technique{
			TacticID: "TA0001", TacticName: "Initial Access",
			TechniqueID: "T1190", TechniqueName: "Exploit Public-Facing Application",
		},
		FamilyTechniques: map[string][]Technique{
			"Emotet": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0002", TacticName: "Execution", TechniqueID: "T1204", TechniqueName: "User Execution"},
				{TacticID: "TA0011", TacticName: "Command and Control", TechniqueID: "T1071", TechniqueName: "Application Layer Protocol"},
			},
			"QakBot": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0006", TacticName: "Credential Access", TechniqueID: "T1555", TechniqueName: "Credentials from Password Stores"},
				{TacticID: "TA0011", TacticName: "Command and Control", TechniqueID: "T1071", TechniqueName: "Application Layer Protocol"},
			},
			"TrickBot": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0008", TacticName: "Lateral Movement", TechniqueID: "T1021", TechniqueName: "Remote Services"},
				{TacticID: "TA0011", TacticName: "Command and Control", TechniqueID: "T1071", TechniqueName: "Application Layer Protocol"},
			},
			"Dridex": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0009", TacticName: "Collection", TechniqueID: "T1005", TechniqueName: "Data from Local System"},
			},
			"BumbleBee": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0002", TacticName: "Execution", TechniqueID: "T1059", TechniqueName: "Command and Scripting Interpreter"},
			},
			"Pikabot": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0005", TacticName: "Defense Evasion", TechniqueID: "T1055", TechniqueName: "Process Injection"},
			},
			"BazaLoader": {
				{TacticID: "TA0001", TacticName: "Initial Access", TechniqueID: "T1566", TechniqueName: "Phishing"},
				{TacticID: "TA0002", TacticName: "Execution", TechniqueID: "T1059", TechniqueName: "Command and Scripting Interpreter"},
			},
		},
	}
}
