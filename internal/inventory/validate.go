package inventory

import (
	"regexp"
	"strconv"
	"strings"

	"easyplug-admin/pkg/easyplug"
)

// StandardTierName is the subscription name carrying the old-items-only
// restriction, matched case-insensitively.
const StandardTierName = "standard"

// StandardTierMessage is surfaced when a listing text conflicts with the
// Standard tier.
const StandardTierMessage = "When using the Standard subscription you may only list OLD items. Remove mentions of 'new' or 'refurbished' or choose another subscription."

// forbiddenWords flags wording that implies a non-old item. "refurbunished"
// appears in real listings often enough to be matched alongside the correct
// spelling.
var forbiddenWords = regexp.MustCompile(`(?i)\b(new|brand new|refurb(?:ished)?|refurbunished)\b`)

// FindSubscription looks a subscription up by ID in the reference list.
func FindSubscription(subs []easyplug.Subscription, id string) (easyplug.Subscription, bool) {
	for _, s := range subs {
		if s.SubscriptionID == id {
			return s, true
		}
	}
	return easyplug.Subscription{}, false
}

// IsStandardTier reports whether the selected subscription is the Standard
// tier. An unknown or empty selection is not Standard.
func IsStandardTier(subs []easyplug.Subscription, id string) bool {
	if id == "" {
		return false
	}
	s, ok := FindSubscription(subs, id)
	if !ok || s.Name == "" {
		return false
	}
	return strings.EqualFold(s.Name, StandardTierName)
}

// ValidateDetails checks the details step against the schema rules, including
// the cross-field Standard-tier wording restriction. The returned map is
// field name to message; an empty map means the step passes.
func ValidateDetails(v FormValues, imageCount int, subs []easyplug.Subscription) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(v.Title) == "" {
		errs["title"] = "Required"
	}

	if strings.TrimSpace(v.Price) == "" {
		errs["price"] = "Required"
	} else if price, err := strconv.ParseFloat(v.Price, 64); err != nil {
		errs["price"] = "Must be a number"
	} else if price < 0 {
		errs["price"] = "Must be >= 0"
	}

	if imageCount < MinImages {
		errs["images"] = "At least 3 images required"
	}

	if IsStandardTier(subs, v.SubscriptionID) {
		if _, ok := errs["title"]; !ok && forbiddenWords.MatchString(v.Title) {
			errs["title"] = StandardTierMessage
		}
		if forbiddenWords.MatchString(v.Description) {
			errs["description"] = StandardTierMessage
		}
	}

	return errs
}

// DeriveOnSubscriptionChange applies the tier-dependent derived fields. It is
// called exactly once per actual selection change: Standard forces old-item,
// non-advertisement listings; any other tier defaults to an advertisement.
func DeriveOnSubscriptionChange(v *FormValues, subs []easyplug.Subscription) {
	if v.SubscriptionID == "" {
		return
	}
	if IsStandardTier(subs, v.SubscriptionID) {
		v.Condition = ConditionOld
		v.IsAdvertisement = false
		return
	}
	v.IsAdvertisement = true
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
