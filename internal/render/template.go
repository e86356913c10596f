package render

import "html/template"

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Weekly Threat Digest {{.R.Metadata.WeekID}}</title>
<style>
:root{--bg:#0d1117;--panel:#161b22;--border:#30363d;--text:#c9d1d9;--muted:#8b949e;--accent:#58a6ff;
--low:#3fb950;--guarded:#d29922;--elevated:#f0883e;--critical:#f85149}
*{box-sizing:border-box;margin:0;padding:0}
body{background:var(--bg);color:var(--text);font:16px/1.6 -apple-system,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;padding:2rem 1rem}
main{max-width:960px;margin:0 auto}
header{border-bottom:1px solid var(--border);padding-bottom:1.5rem;margin-bottom:2rem}
h1{font-size:1.7rem;margin-bottom:.3rem}
h2{font-size:1.2rem;margin:2rem 0 .8rem;color:var(--accent)}
.meta{color:var(--muted);font-size:.9rem}
.badge{display:inline-block;padding:.25rem .9rem;border-radius:999px;font-weight:700;letter-spacing:.05em;margin-top:.8rem}
.badge.low{background:var(--low);color:#04100a}
.badge.guarded{background:var(--guarded);color:#140e02}
.badge.elevated{background:var(--elevated);color:#140902}
.badge.critical{background:var(--critical);color:#190505}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(160px,1fr));gap:1rem}
.card{background:var(--panel);border:1px solid var(--border);border-radius:8px;padding:1rem}
.card .num{font-size:2rem;font-weight:700;color:var(--accent)}
.card .lbl{color:var(--muted);font-size:.85rem;text-transform:uppercase;letter-spacing:.05em}
table{width:100%;border-collapse:collapse;background:var(--panel);border:1px solid var(--border);border-radius:8px;overflow:hidden}
th,td{text-align:left;padding:.55rem .8rem;border-bottom:1px solid var(--border);font-size:.9rem}
th{color:var(--muted);text-transform:uppercase;font-size:.75rem;letter-spacing:.05em}
tr:last-child td{border-bottom:none}
.tag{display:inline-block;background:#21262d;border:1px solid var(--border);border-radius:4px;padding:.1rem .5rem;font-size:.78rem;margin:.15rem .2rem .15rem 0}
.bar{background:#21262d;border-radius:4px;height:8px;overflow:hidden;margin-top:.25rem}
.bar span{display:block;height:100%;background:var(--accent)}
ul.news{list-style:none}
ul.news li{padding:.5rem 0;border-bottom:1px solid var(--border)}
ul.news li:last-child{border-bottom:none}
ul.news a{color:var(--accent);text-decoration:none}
ul.news .src{color:var(--muted);font-size:.8rem}
footer{margin-top:2.5rem;color:var(--muted);font-size:.8rem;border-top:1px solid var(--border);padding-top:1rem}
.trend{color:var(--muted);font-size:.85rem}
.empty{color:var(--muted);font-style:italic}
</style>
</head>
<body>
<main>
<header>
<h1>Weekly Threat Digest &mdash; {{.R.Metadata.WeekID}}</h1>
<p class="meta">Week {{.R.Metadata.Week}}, {{.R.Metadata.Year}} &middot; generated {{.R.Metadata.Generated.Format "2006-01-02 15:04 MST"}}</p>
<span class="badge {{.LevelClass}}">{{.R.Metadata.ThreatLevel}}</span>
<p class="meta">Threat score {{.R.Metadata.ThreatScore}}</p>
</header>

<section class="grid">
<div class="card"><div class="num">{{.R.Stats.KEVCount}}</div><div class="lbl">New KEV entries</div></div>
<div class="card"><div class="num">{{.R.Stats.RansomwareCount}}</div><div class="lbl">Ransomware linked</div></div>
<div class="card"><div class="num">{{.R.Stats.C2Count}}</div><div class="lbl">Active C2 servers</div></div>
<div class="card"><div class="num">{{.R.Stats.NewsCount}}</div><div class="lbl">News items</div></div>
</section>

<h2>Week-over-week trends</h2>
<table>
<tr><th>Metric</th><th>Current</th><th>Previous</th><th>Change</th><th>8-week avg</th></tr>
<tr><td>KEV additions</td><td>{{.R.Trends.KEV.Current}}</td><td>{{.R.Trends.KEV.Previous}}</td><td class="trend">{{printf "%+.1f%%" .R.Trends.KEV.ChangePct}}</td><td>{{printf "%.1f" .R.Trends.KEV.Average}}</td></tr>
<tr><td>C2 servers</td><td>{{.R.Trends.C2.Current}}</td><td>{{.R.Trends.C2.Previous}}</td><td class="trend">{{printf "%+.1f%%" .R.Trends.C2.ChangePct}}</td><td>{{printf "%.1f" .R.Trends.C2.Average}}</td></tr>
<tr><td>Ransomware CVEs</td><td>{{.R.Trends.Ransomware.Current}}</td><td>{{.R.Trends.Ransomware.Previous}}</td><td class="trend">{{printf "%+.1f%%" .R.Trends.Ransomware.ChangePct}}</td><td>{{printf "%.1f" .R.Trends.Ransomware.Average}}</td></tr>
</table>

<h2>Exploited vulnerabilities added this week</h2>
{{if .R.Data.RecentKEVs}}
<table>
<tr><th>CVE</th><th>Vendor</th><th>Product</th><th>Added</th><th>Ransomware</th></tr>
{{range .R.Data.RecentKEVs}}
<tr><td>{{.CVEID}}</td><td>{{.VendorProject}}</td><td>{{.Product}}</td><td>{{.DateAdded}}</td><td>{{if index $.Ransomware .CVEID}}yes{{else}}&mdash;{{end}}</td></tr>
{{end}}
</table>
{{else}}<p class="empty">No new catalog entries in the last seven days.</p>{{end}}

<h2>C2 infrastructure by malware family</h2>
{{if .Families}}
<table>
<tr><th>Family</th><th>Servers</th><th>Share</th></tr>
{{range .Families}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td>{{printf "%.1f%%" .Pct}}<div class="bar"><span style="width:{{printf "%.1f" .Pct}}%"></span></div></td></tr>
{{end}}
</table>
{{else}}<p class="empty">No active C2 servers observed.</p>{{end}}

<h2>C2 infrastructure by country</h2>
{{if .Countries}}
<table>
<tr><th>Country</th><th>Servers</th><th>Share</th></tr>
{{range .Countries}}
<tr><td>{{.Label}}</td><td>{{.Count}}</td><td>{{printf "%.1f%%" .Pct}}</td></tr>
{{end}}
</table>
{{else}}<p class="empty">No active C2 servers observed.</p>{{end}}

<h2>ATT&amp;CK techniques in play</h2>
{{if .Techniques}}
<table>
<tr><th>Technique</th><th>Tactic</th><th>Weight</th></tr>
{{range .Techniques}}
<tr><td>{{.TechniqueID}} {{.TechniqueName}}</td><td>{{.TacticID}} {{.TacticName}}</td><td>{{.Count}}</td></tr>
{{end}}
</table>
{{else}}<p class="empty">No technique activity derived this week.</p>{{end}}

{{if .R.Data.TrendingTopics}}
<h2>Trending topics</h2>
<p>{{range .R.Data.TrendingTopics}}<span class="tag">{{.Keyword}} ({{.Count}})</span>{{end}}</p>
{{end}}

<h2>Security news</h2>
{{if .R.Data.NewsItems}}
<ul class="news">
{{range .R.Data.NewsItems}}
<li><a href="{{.Link}}">{{.Title}}</a><br><span class="src">{{.Source}}{{with .PubDate}} &middot; {{.}}{{end}}</span></li>
{{end}}
</ul>
{{else}}<p class="empty">No headlines collected.</p>{{end}}

<footer>Report {{.R.Metadata.ID}} &middot; sources: CISA KEV catalog, Feodo Tracker, public security news feeds.</footer>
</main>
</body>
</html>
`
