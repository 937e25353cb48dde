package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Phone string `json:"phone" binding:"required,e164,startswith=+7,len=12"`
	Age   int    `json:"age" binding:"required,min=10,max=35"`
	City  string `json:"city" binding:"omitempty,min=2,max=50"`
}

func TestParseErrorUsesJSONNames(t *testing.T) {
	UseJSONNames()

	err := binding.Validator.ValidateStruct(&sample{Phone: "+19995551234", Age: 40, City: "A"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := ParseError(err)
	for _, key := range []string{"phone", "age", "city"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected %q in %v", key, fields)
		}
	}
	if fields["age"] != "must be at most 35" {
		t.Fatalf("unexpected age message %q", fields["age"])
	}
	if fields["city"] != "must be at least 2 characters" {
		t.Fatalf("unexpected city message %q", fields["city"])
	}
}

func TestParseErrorAcceptsKazakhPhone(t *testing.T) {
	UseJSONNames()

	if err := binding.Validator.ValidateStruct(&sample{Phone: "+77011234567", Age: 20}); err != nil {
		t.Fatalf("expected valid, got %v", ParseError(err))
	}
}
