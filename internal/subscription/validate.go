package subscription

import (
	"strconv"
	"strings"
)

// Validate checks the subscription form. The returned map is field name to
// message; empty means the form passes.
func (in CreateInput) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Required"
	}

	if strings.TrimSpace(in.DurationInHours) == "" {
		errs["durationInHours"] = "Required"
	} else if hours, err := strconv.Atoi(in.DurationInHours); err != nil {
		errs["durationInHours"] = "Must be an integer"
	} else if hours < 1 {
		errs["durationInHours"] = "Must be >= 1"
	}

	if strings.TrimSpace(in.Price) == "" {
		errs["price"] = "Required"
	} else if price, err := strconv.ParseFloat(in.Price, 64); err != nil {
		errs["price"] = "Must be a number"
	} else if price < 0 {
		errs["price"] = "Must be >= 0"
	}

	if in.Status != "active" && in.Status != "inactive" {
		errs["status"] = "Must be active or inactive"
	}

	return errs
}
