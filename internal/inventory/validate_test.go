package inventory

import (
	"testing"

	"easyplug-admin/pkg/easyplug"
)

var testSubs = []easyplug.Subscription{
	{SubscriptionID: "sub-std", Name: "Standard", Price: 50},
	{SubscriptionID: "sub-gold", Name: "Gold", Price: 200},
}

func TestValidateDetails(t *testing.T) {
	base := func() FormValues {
		v := DefaultFormValues()
		v.Title = "Couch"
		v.Price = "1200"
		return v
	}

	t.Run("valid form passes", func(t *testing.T) {
		if errs := ValidateDetails(base(), 3, testSubs); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("missing title and price", func(t *testing.T) {
		v := base()
		v.Title = "   "
		v.Price = ""
		errs := ValidateDetails(v, 3, testSubs)
		if errs["title"] != "Required" {
			t.Errorf("title: got %q", errs["title"])
		}
		if errs["price"] != "Required" {
			t.Errorf("price: got %q", errs["price"])
		}
	})

	t.Run("price must be numeric and non-negative", func(t *testing.T) {
		v := base()
		v.Price = "abc"
		if errs := ValidateDetails(v, 3, testSubs); errs["price"] != "Must be a number" {
			t.Errorf("non-numeric: got %q", errs["price"])
		}
		v.Price = "-5"
		if errs := ValidateDetails(v, 3, testSubs); errs["price"] != "Must be >= 0" {
			t.Errorf("negative: got %q", errs["price"])
		}
	})

	t.Run("image minimum", func(t *testing.T) {
		if errs := ValidateDetails(base(), 2, testSubs); errs["images"] != "At least 3 images required" {
			t.Errorf("got %q", errs["images"])
		}
	})

	t.Run("standard tier rejects new-item wording", func(t *testing.T) {
		v := base()
		v.SubscriptionID = "sub-std"
		v.Title = "Brand NEW couch"
		v.Description = "refurbunished last month"
		errs := ValidateDetails(v, 3, testSubs)
		if errs["title"] != StandardTierMessage {
			t.Errorf("title: got %q", errs["title"])
		}
		if errs["description"] != StandardTierMessage {
			t.Errorf("description: got %q", errs["description"])
		}
	})

	t.Run("standard tier allows words containing the substring", func(t *testing.T) {
		v := base()
		v.SubscriptionID = "sub-std"
		v.Title = "Newspaper stand, renewed interest"
		if errs := ValidateDetails(v, 3, testSubs); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("other tiers ignore wording", func(t *testing.T) {
		v := base()
		v.SubscriptionID = "sub-gold"
		v.Title = "Brand new couch"
		if errs := ValidateDetails(v, 3, testSubs); len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})
}

func TestDeriveOnSubscriptionChange(t *testing.T) {
	t.Run("standard forces old non-advertisement", func(t *testing.T) {
		v := DefaultFormValues()
		v.SubscriptionID = "sub-std"
		v.Condition = ConditionNew
		v.IsAdvertisement = true
		DeriveOnSubscriptionChange(&v, testSubs)
		if v.Condition != ConditionOld {
			t.Errorf("condition: got %q", v.Condition)
		}
		if v.IsAdvertisement {
			t.Error("expected isAdvertisement false")
		}
	})

	t.Run("other tier becomes advertisement", func(t *testing.T) {
		v := DefaultFormValues()
		v.SubscriptionID = "sub-gold"
		v.Condition = ConditionNew
		DeriveOnSubscriptionChange(&v, testSubs)
		if !v.IsAdvertisement {
			t.Error("expected isAdvertisement true")
		}
		if v.Condition != ConditionNew {
			t.Errorf("condition should be untouched, got %q", v.Condition)
		}
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		v := DefaultFormValues()
		v.IsAdvertisement = false
		DeriveOnSubscriptionChange(&v, testSubs)
		if v.IsAdvertisement {
			t.Error("expected no change")
		}
	})
}

func TestIsStandardTier(t *testing.T) {
	if !IsStandardTier(testSubs, "sub-std") {
		t.Error("standard id should match")
	}
	if IsStandardTier(testSubs, "sub-gold") {
		t.Error("gold id should not match")
	}
	if IsStandardTier(testSubs, "") || IsStandardTier(testSubs, "missing") {
		t.Error("empty or unknown ids should not match")
	}
}
