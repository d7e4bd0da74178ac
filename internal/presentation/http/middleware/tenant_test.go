package middleware

import "testing"

func TestExtractTenantFromHost(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		want    string
		wantErr bool
	}{
		{"subdomain", "downtown.shipos.app", "downtown", false},
		{"subdomain with port", "downtown.shipos.app:8080", "downtown", false},
		{"deep subdomain takes first label", "downtown.staging.shipos.app", "downtown", false},
		{"bare domain", "shipos.app", "", true},
		{"localhost", "localhost:8080", "", true},
		{"no subdomain single label", "localhost", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTenantFromHost(tt.host)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractTenantFromHost(%q) error = %v, wantErr %v", tt.host, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractTenantFromHost(%q) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}
