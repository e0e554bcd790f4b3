package app

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

// postgresDSN is a connection string in either URL form
// (postgres://host/db?opt=v) or keyword/value form (host=x dbname=y).
type postgresDSN struct {
	raw string
	url *url.URL
}

func parseDSN(raw string) postgresDSN {
	raw = strings.TrimSpace(raw)
	dsn := postgresDSN{raw: raw}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		dsn.url = u
	}
	return dsn
}

// withApplicationName sets application_name on URL-form strings so the
// service shows up in pg_stat_activity. An explicit value wins; keyword form
// is returned as is.
func (d postgresDSN) withApplicationName(name string) string {
	name = strings.TrimSpace(name)
	if d.url == nil || name == "" {
		return d.raw
	}
	q := d.url.Query()
	if q.Get("application_name") != "" {
		return d.raw
	}
	q.Set("application_name", name)

	u := *d.url
	u.RawQuery = q.Encode()
	return u.String()
}

func (d postgresDSN) dbName() string {
	if d.url != nil {
		return strings.TrimSpace(strings.TrimPrefix(d.url.Path, "/"))
	}
	for _, kv := range strings.Fields(d.raw) {
		if v, ok := strings.CutPrefix(kv, "dbname="); ok {
			return strings.Trim(v, `"'`)
		}
	}
	return ""
}

// traceQuery collapses whitespace in a statement and caps it at
// maxTracedQueryLength bytes without splitting a rune.
func traceQuery(query string) string {
	q := strings.Join(strings.Fields(query), " ")
	if len(q) <= maxTracedQueryLength {
		return q
	}
	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(q[cut]) {
		cut--
	}
	return q[:cut] + "..."
}
