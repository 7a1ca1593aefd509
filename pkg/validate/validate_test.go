package validate_test

import (
	"strings"
	"testing"

	"github.com/pharmadesk/pharmadesk/pkg/validate"
)

type signInForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type productForm struct {
	Name       string  `json:"name"       validate:"required,min=2"`
	Price      float64 `json:"price"      validate:"required,gte=0"`
	Quantity   int     `json:"quantity"   validate:"required,gte=0"`
	ExpiryDate string  `json:"expiryDate" validate:"required,date"`
}

type profileForm struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"nullable,min=6"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(productForm{
		Name:       "aspirin",
		Price:      10,
		Quantity:   5,
		ExpiryDate: "2027-01-31",
	})
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(signInForm{})
	if errs["email"] != "email is required" {
		t.Errorf("email: got %q", errs["email"])
	}
	if errs["password"] != "password is required" {
		t.Errorf("password: got %q", errs["password"])
	}
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(signInForm{Email: "nope", Password: "x"})
	if !strings.Contains(errs["email"], "valid email") {
		t.Errorf("got %q", errs["email"])
	}

	errs = validate.Struct(signInForm{Email: "ada@pharmadesk.test", Password: "x"})
	if _, ok := errs["email"]; ok {
		t.Errorf("valid address rejected: %q", errs["email"])
	}
}

func TestStructMinLength(t *testing.T) {
	errs := validate.Struct(productForm{Name: "x", Price: 1, Quantity: 1, ExpiryDate: "2027-01-31"})
	if !strings.Contains(errs["name"], "at least 2 characters") {
		t.Errorf("got %q", errs["name"])
	}
}

func TestStructDate(t *testing.T) {
	errs := validate.Struct(productForm{Name: "aspirin", Price: 1, Quantity: 1, ExpiryDate: "soonish"})
	if !strings.Contains(errs["expiryDate"], "valid date") {
		t.Errorf("got %q", errs["expiryDate"])
	}

	for _, ok := range []string{"2027-01-31", "2027-01-31T00:00:00Z", "31/01/2027"} {
		errs := validate.Struct(productForm{Name: "aspirin", Price: 1, Quantity: 1, ExpiryDate: ok})
		if _, bad := errs["expiryDate"]; bad {
			t.Errorf("%s rejected: %q", ok, errs["expiryDate"])
		}
	}
}

func TestStructNullableSkipsWhenEmpty(t *testing.T) {
	errs := validate.Struct(profileForm{Name: "Ada"})
	if len(errs) != 0 {
		t.Errorf("empty nullable password should skip min rule, got %v", errs)
	}

	errs = validate.Struct(profileForm{Name: "Ada", Password: "shrt"})
	if !strings.Contains(errs["password"], "at least 6") {
		t.Errorf("got %q", errs["password"])
	}
}

func TestFirstErrorDeterministic(t *testing.T) {
	if got := validate.FirstError(nil); got != "" {
		t.Errorf("nil map: got %q", got)
	}

	errs := map[string]string{"zeta": "zeta bad", "alpha": "alpha bad"}
	for i := 0; i < 10; i++ {
		if got := validate.FirstError(errs); got != "alpha bad" {
			t.Fatalf("got %q, want the alphabetically first field's message", got)
		}
	}
}
