package search

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query is an order search typed by a store owner.
// Free words are matched against the order text, flags narrow the result:
//
//	maria calle 5 --estado enviada --limit 10
type Query struct {
	RawInput string
	Terms    string
	Status   string
	Limit    int
}

func NewSearchQuery(input string) Query {
	query := Query{RawInput: input, Limit: DefaultLimit}

	parts := strings.Fields(input)
	var textTerms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			val := parts[i+1]
			switch strings.TrimPrefix(part, "--") {
			case "estado":
				query.Status = strings.ToLower(val)
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = min(n, MaxLimit)
				}
			}
			i++
			continue
		}
		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

func (q Query) IsEmpty() bool {
	return q.Terms == "" && q.Status == ""
}
