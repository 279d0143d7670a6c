// Package premium decides whether an action belongs to a premium connector.
package premium

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

// DefaultKeywords cover premium services that have no catalog entry yet.
// They are matched case-sensitively as plain substrings.
var DefaultKeywords = []string{"Adobe Acrobat Sign", "Adobe Sign", "Acrobat Sign"}

// Index is the lookup data derived from the premium subset of the app
// catalog. It is built once and never changes.
type Index struct {
	ids      []string
	patterns []*regexp.Regexp
	names    []string
	keywords []string
}

// NewIndex derives an Index from apps. Non-premium apps are ignored, as are
// premium apps with an empty id or name for the rules that need them.
func NewIndex(apps []models.App, keywords []string) *Index {
	idx := &Index{keywords: append([]string(nil), keywords...)}
	for _, app := range apps {
		if !app.Premium {
			continue
		}
		if app.ID != "" {
			idx.ids = append(idx.ids, strings.ToLower(app.ID))
		}
		if app.Name != "" {
			idx.names = append(idx.names, strings.ToLower(app.Name))
			idx.patterns = append(idx.patterns, regexp.MustCompile(`(?i)^`+regexp.QuoteMeta(app.Name)+`\b`))
		}
	}
	return idx
}

// Size returns the number of premium connectors indexed by id.
func (idx *Index) Size() int {
	return len(idx.ids)
}

// Match records which rule classified an action. Empty fields did not match.
type Match struct {
	ID      string
	Pattern string
	Name    string
	Keyword string
}

// Premium reports whether any rule matched.
func (m Match) Premium() bool {
	return m.ID != "" || m.Pattern != "" || m.Name != "" || m.Keyword != ""
}

// Classifier answers premium questions against an Index.
type Classifier struct {
	index  *Index
	logger *logrus.Entry
}

// NewClassifier creates a classifier. A nil logger discards output.
func NewClassifier(index *Index, logger *logrus.Entry) *Classifier {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}
	return &Classifier{index: index, logger: logger.WithField("component", "premium")}
}

// IsPremiumConnectorAction reports whether actionName belongs to a premium
// connector.
//
// Rule three (name substring) is intentionally broad: a premium app whose name
// is a common word will also claim unrelated actions containing that word.
func (c *Classifier) IsPremiumConnectorAction(actionName string) bool {
	return c.Explain(actionName).Premium()
}

// Explain evaluates every rule and reports which ones matched.
func (c *Classifier) Explain(actionName string) Match {
	var m Match
	if actionName == "" {
		return m
	}
	lower := strings.ToLower(actionName)

	for _, id := range c.index.ids {
		if lower == id || strings.HasPrefix(lower, id+"-") {
			m.ID = id
			break
		}
	}
	for _, p := range c.index.patterns {
		if p.MatchString(actionName) {
			m.Pattern = p.String()
			break
		}
	}
	for _, name := range c.index.names {
		if strings.Contains(lower, name) {
			m.Name = name
			break
		}
	}
	for _, kw := range c.index.keywords {
		if kw != "" && strings.Contains(actionName, kw) {
			m.Keyword = kw
			break
		}
	}

	if m.Premium() {
		c.logger.WithFields(logrus.Fields{
			"action":  actionName,
			"id":      m.ID,
			"pattern": m.Pattern,
			"name":    m.Name,
			"keyword": m.Keyword,
		}).Trace("Premium connector action")
	}
	return m
}

// IsActionDisabled reports whether an action is gated for the current user.
func (c *Classifier) IsActionDisabled(actionName string, isPremiumUser bool) bool {
	if isPremiumUser {
		return false
	}
	return c.IsPremiumConnectorAction(actionName)
}
