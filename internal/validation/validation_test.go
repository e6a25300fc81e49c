package validation

import (
	"testing"

	"template-vault/internal/apperr"

	"github.com/stretchr/testify/require"
)

type registerInput struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email_address"`
	Password  string `json:"password" validate:"required,password"`
}

type templateInput struct {
	OwnerID string `json:"owner_id" validate:"required,id"`
	Name    string `json:"name" validate:"required"`
}

func TestIsPassword(t *testing.T) {
	cases := map[string]bool{
		"Aa1!aaaa":              true,
		"Secret123&":            true,
		"aa1!aaaa":              false, // no upper
		"AA1!AAAA":              false, // no lower
		"Aaa!aaaa":              false, // no digit
		"Aa1aaaaa":              false, // no special
		"Aa1!aaa":               false, // too short
		"Aa1!aaaaaaaaaaaaaaaaa": false, // 21 chars
		"Aa1!aaa^":              false, // char outside the set
		"":                      false,
	}
	for pw, want := range cases {
		require.Equal(t, want, IsPassword(pw), pw)
	}
}

func TestIsEmail(t *testing.T) {
	require.True(t, IsEmail("a@b.com"))
	require.True(t, IsEmail("first.last+tag@mail.example.org"))
	require.False(t, IsEmail("a@b"))
	require.False(t, IsEmail("not-an-email"))
	require.False(t, IsEmail("a b@c.com"))
}

func TestIsID(t *testing.T) {
	require.True(t, IsID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	require.False(t, IsID("abc"))
	require.False(t, IsID(""))
}

func TestStruct(t *testing.T) {
	require.Nil(t, Struct(&registerInput{FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Password: "Aa1!aaaa"}))
	require.NoError(t, Struct(&registerInput{FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Password: "Aa1!aaaa"}).Err())

	v := Struct(&registerInput{Email: "bad", Password: "weak"})
	require.Equal(t, "First name is required", v["first_name"])
	require.Equal(t, "Last name is required", v["last_name"])
	require.Equal(t, "Email is invalid", v["email"])
	require.Contains(t, v["password"], "Password is invalid")

	err := v.Err()
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Len(t, apperr.Fields(err), 4)
}

func TestStructCustomID(t *testing.T) {
	v := Struct(&templateInput{OwnerID: "nope", Name: "welcome"})
	require.Equal(t, Violations{"owner_id": "Owner id must be a valid id"}, v)
}

func TestEchoValidator(t *testing.T) {
	var ev EchoValidator
	require.NoError(t, ev.Validate(&templateInput{OwnerID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Name: "x"}))
	require.ErrorIs(t, ev.Validate(&templateInput{}), apperr.ErrValidation)
}
