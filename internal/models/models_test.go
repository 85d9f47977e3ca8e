package models

import "testing"

func TestAccountTypeValid(t *testing.T) {
	valid := []AccountType{AccountTypeSavings, AccountTypeLoan, AccountTypeCreditCard, AccountTypeCurrentAccount}
	for _, at := range valid {
		if !at.Valid() {
			t.Errorf("expected %s to be valid", at)
		}
	}
	for _, at := range []AccountType{"", "CHEQUE", "savings"} {
		if at.Valid() {
			t.Errorf("expected %q to be invalid", at)
		}
	}
}
