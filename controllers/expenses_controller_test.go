package controllers

import "testing"

func TestExpenseInput_Validate(t *testing.T) {
	t.Parallel()

	amount := 50.0
	negative := -1.0

	cases := []struct {
		name  string
		input expenseInput
		want  string
	}{
		{"valid", expenseInput{Description: "footballs", Amount: &amount}, ""},
		{"missing description", expenseInput{Amount: &amount}, "description is required"},
		{"missing amount", expenseInput{Description: "footballs"}, "amount is required"},
		{"negative amount", expenseInput{Description: "footballs", Amount: &negative}, "amount must not be negative"},
	}

	for _, tc := range cases {
		if got := tc.input.validate(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
