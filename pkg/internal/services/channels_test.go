package services

import "testing"

func TestGetChannelAliasAvailability(t *testing.T) {
	valid := []string{"ops", "general", "team-42", "a1-b2"}
	for _, alias := range valid {
		if err := GetChannelAliasAvailability(alias); err != nil {
			t.Errorf("alias %q should be valid: %v", alias, err)
		}
	}

	invalid := []string{"", "Ops", "team chat", "général", "under_score"}
	for _, alias := range invalid {
		if err := GetChannelAliasAvailability(alias); err == nil {
			t.Errorf("alias %q should be rejected", alias)
		}
	}
}
