package assessment

import "testing"

func validInfo() OrganizationInfo {
	return OrganizationInfo{
		CompanyName:  "Acme Corp",
		Industry:     "Finance",
		CompanySize:  "51-200",
		Region:       "Europe",
		ContactEmail: "user@example.com",
	}
}

func TestOrganizationInfoValidate(t *testing.T) {
	if errs := validInfo().Validate(); len(errs) != 0 {
		t.Fatalf("valid info produced errors: %v", errs)
	}

	tests := []struct {
		name      string
		mutate    func(*OrganizationInfo)
		wantField string
	}{
		{"missing company name", func(i *OrganizationInfo) { i.CompanyName = "" }, FieldCompanyName},
		{"whitespace company name", func(i *OrganizationInfo) { i.CompanyName = "   " }, FieldCompanyName},
		{"missing industry", func(i *OrganizationInfo) { i.Industry = "" }, FieldIndustry},
		{"missing size", func(i *OrganizationInfo) { i.CompanySize = "" }, FieldCompanySize},
		{"missing region", func(i *OrganizationInfo) { i.Region = "" }, FieldRegion},
		{"missing email", func(i *OrganizationInfo) { i.ContactEmail = "" }, FieldContactEmail},
		{"malformed email", func(i *OrganizationInfo) { i.ContactEmail = "not-an-email" }, FieldContactEmail},
		{"email without tld", func(i *OrganizationInfo) { i.ContactEmail = "user@host" }, FieldContactEmail},
		{"email with spaces", func(i *OrganizationInfo) { i.ContactEmail = "us er@example.com" }, FieldContactEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validInfo()
			tt.mutate(&info)
			errs := info.Validate()
			if errs[tt.wantField] == "" {
				t.Errorf("expected error on field %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestOrganizationInfoOptionalFields(t *testing.T) {
	info := validInfo()
	info.ContactName = ""
	info.AdditionalNotes = ""
	if errs := info.Validate(); len(errs) != 0 {
		t.Errorf("optional fields should not be required, got %v", errs)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a@b.co", "  padded@example.com  "}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@c.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}
