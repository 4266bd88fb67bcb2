package adapters

import (
	"net/url"
	"strconv"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

// MapQueryToUpdates turns query parameters named after fields into updates.
// Fields are visited in display order; repeated values keep their order.
func MapQueryToUpdates(query url.Values) []domain.Update {
	updates := []domain.Update{}
	for _, f := range domain.Fields {
		for _, v := range query[string(f)] {
			updates = append(updates, domain.Update{Field: f, Raw: v})
		}
	}
	return updates
}

// MapParametersToValues renders the parameters as raw input values.
func MapParametersToValues(p domain.Parameters) map[string]string {
	values := make(map[string]string, len(domain.Fields))
	for _, f := range domain.Fields {
		values[string(f)] = strconv.FormatFloat(p.Get(f), 'f', -1, 64)
	}
	return values
}
