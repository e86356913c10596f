package archive

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var cardTmpl = template.Must(template.New("card").Funcs(template.FuncMap{
	"lower": strings.ToLower,
}).Parse(cardTemplate))

const cardTemplate = `<article class="report-card">
<a href="{{.HTMLFile}}">
<h3>{{.WeekID}}</h3>
<span class="level level-{{lower .ThreatLevel}}">{{.ThreatLevel}}</span>
<ul class="card-stats">
<li><strong>{{.Stats.KEVCount}}</strong> KEV entries</li>
<li><strong>{{.Stats.C2Count}}</strong> C2 servers</li>
<li><strong>{{.Stats.RansomwareCount}}</strong> ransomware CVEs</li>
</ul>
</a>
</article>
`

// renderCards produces the card fragments for the archive container,
// one per week in the given order.
func renderCards(weeks []WeekEntry) (string, error) {
	var buf bytes.Buffer
	for _, w := range weeks {
		if err := cardTmpl.Execute(&buf, w); err != nil {
			return "", fmt.Errorf("render card %s: %w", w.WeekID, err)
		}
	}
	return buf.String(), nil
}
