package util

import "testing"

func TestValidateTruck(t *testing.T) {
	if err := ValidateTruck("1234-ABC", "Volvo FH16"); err != nil {
		t.Errorf("valid truck rejected: %v", err)
	}
	if err := ValidateTruck("", "Volvo FH16"); err == nil {
		t.Error("blank license plate accepted")
	}
	if err := ValidateTruck("1234-ABC", "   "); err == nil {
		t.Error("blank model accepted")
	}
}

func TestValidateTruckDriver(t *testing.T) {
	if err := ValidateTruckDriver("11111111A", "Ana", "600111222", "C/ Mayor 1"); err != nil {
		t.Errorf("valid driver rejected: %v", err)
	}

	cases := [][4]string{
		{"", "Ana", "600111222", "C/ Mayor 1"},
		{"11111111A", "", "600111222", "C/ Mayor 1"},
		{"11111111A", "Ana", "", "C/ Mayor 1"},
		{"11111111A", "Ana", "600111222", ""},
	}
	for _, c := range cases {
		if err := ValidateTruckDriver(c[0], c[1], c[2], c[3]); err == nil {
			t.Errorf("ValidateTruckDriver(%v) accepted a blank field", c)
		}
	}

	// fields are checked in declaration order, so the first blank one
	// is always the one reported
	for i := 0; i < 20; i++ {
		err := ValidateTruckDriver("", "", "", "")
		if err == nil || err.Error() != "dni is required" {
			t.Fatalf("error = %v, want dni reported first", err)
		}
	}
}

func TestValidatePack(t *testing.T) {
	if err := ValidatePack("fragile boxes", "C/ Luna 5"); err != nil {
		t.Errorf("valid pack rejected: %v", err)
	}
	if err := ValidatePack("", "C/ Luna 5"); err == nil {
		t.Error("blank description accepted")
	}
	if err := ValidatePack("fragile boxes", ""); err == nil {
		t.Error("blank destination accepted")
	}
}

func TestValidateCity(t *testing.T) {
	if err := ValidateCity("Madrid"); err != nil {
		t.Errorf("valid city rejected: %v", err)
	}
	if err := ValidateCity(" "); err == nil {
		t.Error("blank city name accepted")
	}
}

func TestValidateDeliveryAddress(t *testing.T) {
	if err := ValidateDeliveryAddress("C/ Sol 3", "28001"); err != nil {
		t.Errorf("valid address rejected: %v", err)
	}
	if err := ValidateDeliveryAddress("", "28001"); err == nil {
		t.Error("blank street accepted")
	}
	if err := ValidateDeliveryAddress("C/ Sol 3", ""); err == nil {
		t.Error("blank postal code accepted")
	}
}

func TestParseAssignmentDate(t *testing.T) {
	if _, err := ParseAssignmentDate("2024-06-15"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}

	for _, bad := range []string{"", "15-06-2024", "2024/06/15", "2024-13-01", "not-a-date"} {
		if _, err := ParseAssignmentDate(bad); err == nil {
			t.Errorf("ParseAssignmentDate(%q) accepted invalid input", bad)
		}
	}
}
